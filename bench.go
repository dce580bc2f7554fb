// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import "time"

// Result holds the outcome of one timed estimator run.
type Result struct {
	Name      string
	Threshold Pixel
	Duration  time.Duration
}

// BenchmarkAll runs every estimator exactly once over the buffer,
// in the order Estimators returns them, timing each run. A pristine
// copy of the buffer is taken first and the buffer is restored from
// it after each destructive estimator, so every estimator sees the
// original pixel distribution and the buffer is unchanged when
// BenchmarkAll returns. Each estimator runs to completion before the
// next begins; there is no concurrency and no retrying.
func BenchmarkAll(greyscale []Pixel, width int, height int, ratio float64, sampleRate int) []Result {
	pristine := make([]Pixel, len(greyscale))
	copy(pristine, greyscale)

	var results []Result
	for _, e := range Estimators(sampleRate) {
		start := time.Now()
		t := e.Fn(greyscale, width, height, ratio)
		elapsed := time.Since(start)
		if e.Destructive {
			copy(greyscale, pristine)
		}
		results = append(results, Result{Name: e.Name, Threshold: t, Duration: elapsed})
	}
	return results
}
