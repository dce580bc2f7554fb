// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import "testing"

func TestBenchmarkAllOrder(t *testing.T) {
	expected := []string{
		"Counting Sort",
		"Full Sort",
		"Nth Element",
		"Normal Estimate",
		"Weighted Estimate",
		"Uniform Sample",
	}

	greyscale := variedbuf()
	results := BenchmarkAll(greyscale, 8, 8, DefaultRatio, DefaultSampleRate)
	if len(results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(results))
	}
	for i, r := range results {
		if r.Name != expected[i] {
			t.Errorf("Result %d is %s, expected %s", i, r.Name, expected[i])
		}
	}
}

func TestBenchmarkAllRestores(t *testing.T) {
	original := variedbuf()
	greyscale := make([]Pixel, len(original))
	copy(greyscale, original)

	BenchmarkAll(greyscale, 8, 8, DefaultRatio, DefaultSampleRate)

	for i := range original {
		if greyscale[i] != original[i] {
			t.Fatalf("Buffer changed at pixel %d: %d != %d", i, greyscale[i], original[i])
		}
	}
}

func TestBenchmarkAllThresholds(t *testing.T) {
	greyscale := variedbuf()
	results := BenchmarkAll(greyscale, 8, 8, DefaultRatio, DefaultSampleRate)
	for _, r := range results {
		if r.Threshold < 20 || r.Threshold > 240 {
			t.Errorf("%s returned %d, outside the buffer range [20, 240]", r.Name, r.Threshold)
		}
		if r.Duration < 0 {
			t.Errorf("%s reported a negative duration %v", r.Name, r.Duration)
		}
	}
}
