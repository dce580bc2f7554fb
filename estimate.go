// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import (
	"math"
	"sort"
)

// DefaultRatio is the default target ratio of black pixels.
const DefaultRatio = 0.33

// DefaultSampleRate is the default stride for UniformSample.
const DefaultSampleRate = 10

// EstimatorFunc finds a threshold for a width x height greyscale
// buffer such that binarizing with it leaves approximately ratio of
// the pixels black.
type EstimatorFunc func(greyscale []Pixel, width int, height int, ratio float64) Pixel

// Estimator is a named threshold estimation strategy. Destructive
// marks estimators which reorder the buffer to find their result;
// callers that need the original afterwards must restore it from a
// copy, as BenchmarkAll does.
type Estimator struct {
	Name        string
	Destructive bool
	Fn          EstimatorFunc
}

// Estimators returns every estimator in the order they are reported,
// with UniformSample bound to the given sampling stride.
func Estimators(sampleRate int) []Estimator {
	return []Estimator{
		{"Counting Sort", false, CountingSort},
		{"Full Sort", true, FullSort},
		{"Nth Element", true, NthElement},
		{"Normal Estimate", false, NormalEstimate},
		{"Weighted Estimate", false, WeightedEstimate},
		{"Uniform Sample", false, func(greyscale []Pixel, width int, height int, ratio float64) Pixel {
			return UniformSample(greyscale, width, height, sampleRate, ratio)
		}},
	}
}

func mean(greyscale []Pixel) float64 {
	var total uint64
	for _, p := range greyscale {
		total += uint64(p)
	}
	return float64(total) / float64(len(greyscale))
}

func minmax(greyscale []Pixel) (Pixel, Pixel) {
	var min Pixel = MaxPixel
	var max Pixel = 0
	for _, p := range greyscale {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

// clampToRange truncates v to a Pixel, limited to the range of values
// actually present in greyscale, so an approximation can never land
// outside the image's own distribution.
func clampToRange(v float64, greyscale []Pixel) Pixel {
	min, max := minmax(greyscale)
	if v < float64(min) {
		return min
	}
	if v > float64(max) {
		return max
	}
	return Pixel(v)
}

// NormalEstimate approximates the threshold by modelling the image as
// a normal distribution with the population mean and standard
// deviation of the pixels, approximating the z value for ratio with
// the odd polynomial series z = sqrt(2) * (r + r^3 + r^5 + r^7). The
// series is a truncated Maclaurin expansion of the inverse error
// function, so the estimate degrades for ratios near 0 or 1. A zero
// variance image yields the mean, which is the single value present.
func NormalEstimate(greyscale []Pixel, width int, height int, ratio float64) Pixel {
	n := width * height
	if n == 0 {
		return 0
	}
	m := mean(greyscale[:n])

	var sum float64
	for _, p := range greyscale[:n] {
		d := float64(p) - m
		sum += d * d
	}
	sigma := math.Sqrt(sum / float64(n))

	approximation := ratio + math.Pow(ratio, 3) + math.Pow(ratio, 5) + math.Pow(ratio, 7)
	z := math.Sqrt2 * approximation
	return clampToRange(m+z*sigma, greyscale[:n])
}

// WeightedEstimate approximates the threshold by linear
// interpolation: for ratios up to and including 0.5 between zero and
// the mean, and for larger ratios between the mean and the maximum
// representable value.
func WeightedEstimate(greyscale []Pixel, width int, height int, ratio float64) Pixel {
	n := width * height
	if n == 0 {
		return 0
	}
	m := mean(greyscale[:n])

	var min, max float64
	if ratio > 0.5 {
		min, max = m, float64(MaxPixel)
		ratio -= 0.5
	} else {
		min, max = 0, m
	}
	percentage := ratio / 0.5
	return clampToRange(min+(max-min)*percentage, greyscale[:n])
}

// FullSort sorts the buffer ascending and returns the value at the
// target index. The buffer is reordered in place.
func FullSort(greyscale []Pixel, width int, height int, ratio float64) Pixel {
	n := width * height
	if n == 0 {
		return 0
	}
	sort.Slice(greyscale[:n], func(i, j int) bool { return greyscale[i] < greyscale[j] })
	return greyscale[targetIndex(n, ratio)]
}

// NthElement partitions the buffer around the value that would sit at
// the target index if the buffer were sorted, and returns that value,
// without doing the work of a full sort. The buffer is reordered in
// place.
func NthElement(greyscale []Pixel, width int, height int, ratio float64) Pixel {
	n := width * height
	if n == 0 {
		return 0
	}
	return quickselect(greyscale[:n], targetIndex(n, ratio))
}

func targetIndex(n int, ratio float64) int {
	i := int(float64(n) * ratio)
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// quickselect finds the k-th smallest element of s, partially
// ordering s as it goes.
func quickselect(s []Pixel, k int) Pixel {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return s[k]
		}
	}
	return s[k]
}

// partition reorders s[lo:hi+1] around a pivot taken from the middle,
// so the middle choice doesn't degrade on presorted buffers, and
// returns the pivot's final index.
func partition(s []Pixel, lo int, hi int) int {
	mid := lo + (hi-lo)/2
	s[mid], s[hi] = s[hi], s[mid]
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if s[j] < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}

// CountingSort finds the exact threshold using the frequency counting
// half of a counting sort: a histogram with one bucket per possible
// pixel value is walked from zero, accumulating counts until the
// target count is reached.
func CountingSort(greyscale []Pixel, width int, height int, ratio float64) Pixel {
	n := width * height
	if n == 0 {
		return 0
	}
	return countThreshold(greyscale[:n], 1, ratio)
}

// UniformSample is CountingSort run over every sampleRate-th pixel
// only, with the target count scaled down to match. Much faster for
// large sample rates, but only accurate when the image varies slowly
// along the sampling stride.
func UniformSample(greyscale []Pixel, width int, height int, sampleRate int, ratio float64) Pixel {
	n := width * height
	if n == 0 {
		return 0
	}
	if sampleRate < 1 {
		sampleRate = 1
	}
	return countThreshold(greyscale[:n], sampleRate, ratio)
}

// countThreshold histograms every stride-th pixel and walks the
// histogram from zero until the cutoff count is reached, returning
// the last bucket index reached. The result is never negative, and if
// the cutoff is never reached it saturates at MaxPixel.
func countThreshold(greyscale []Pixel, stride int, ratio float64) Pixel {
	count := make([]int, 1<<BitDepth)
	for pixel := 0; pixel < len(greyscale); pixel += stride {
		count[greyscale[pixel]]++
	}

	cutoff := int(float64(len(greyscale)/stride) * ratio)
	if cutoff < 1 {
		cutoff = 1
	}

	total := 0
	index := 0
	for total < cutoff && index < len(count) {
		total += count[index]
		index++
	}
	if index == 0 {
		return 0
	}
	return Pixel(index - 1)
}
