// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import (
	"bytes"
	"testing"
)

func TestGraph(t *testing.T) {
	greyscale := variedbuf()
	results := BenchmarkAll(greyscale, 8, 8, DefaultRatio, DefaultSampleRate)

	var b bytes.Buffer
	err := Graph(greyscale, results, "test", &b)
	if err != nil {
		t.Fatalf("Error creating graph: %v", err)
	}
	if b.Len() == 0 {
		t.Fatalf("Graph wrote no data")
	}
}

func TestGraphEmpty(t *testing.T) {
	var b bytes.Buffer
	err := Graph([]Pixel{}, nil, "test", &b)
	if err == nil {
		t.Fatalf("Expected an error graphing an empty buffer")
	}
}
