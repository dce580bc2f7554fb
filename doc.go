// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The threshold package finds a global binarization threshold for a
greyscale image. Rather than analysing the image to decide how dark a
"dark" pixel is, it starts from a target ratio, the fraction of pixels
that should end up black, and finds the pixel value which splits the
image as close as possible to that ratio.

Six different estimators are provided, each making a different
trade-off between speed and accuracy:

	Counting Sort      builds a histogram over every possible pixel
	                   value and walks it until the target count is
	                   reached. Exact, and linear in the image size.
	Full Sort          sorts the pixels and picks the value at the
	                   target index. Exact, but does more work than
	                   necessary, and reorders the buffer.
	Nth Element        partitions the pixels around the target index
	                   without fully sorting, like C++'s nth_element.
	                   Exact, linear on average, reorders the buffer.
	Normal Estimate    models the image as a normal distribution and
	                   approximates the inverse CDF at the target
	                   ratio with a short polynomial series. Fast but
	                   inaccurate, particularly for ratios near 0 or
	                   1 where the truncated series diverges.
	Weighted Estimate  linearly interpolates between zero, the mean
	                   and the maximum pixel value. Fast and rough.
	Uniform Sample     the Counting Sort method run over every n-th
	                   pixel only. Only as good as the image is
	                   uniform along the sampling stride.

All estimators share the same signature, taking a flat row-major
buffer of greyscale samples with its width and height, plus the target
ratio, and returning a single threshold value. The estimators marked
as reordering the buffer above are flagged Destructive in the
Estimators registry; BenchmarkAll keeps a pristine copy and restores
the buffer around them, so a full run leaves the buffer untouched.

The Binarize function applies a threshold in place, mapping every
pixel to either 0 or MaxPixel. Pixels equal to the threshold go to
black, unless they are already one of the two extremes, in which case
they are left alone, so rebinarizing a binary image is a no-op.

Pixel samples are 8 bit by default. Building with the pixel16 tag
switches the whole package to 16 bit samples. Note that the histogram
based estimators allocate one bucket per possible pixel value, which
at 16 bits means a 65536 entry table per call.

Three tools are included:

	threshold    benchmarks every estimator against an image, prints
	             the threshold found and time taken by each, then
	             binarizes the image with a chosen estimator's
	             threshold and saves the result as a PNG
	threshgraph  draws the image histogram with a marker line for
	             each estimator's threshold
	threshpdf    builds a PDF report containing the benchmark
	             results plus the original and binarized pages

All of the tools describe their usage with the '-h' flag.
*/
package threshold
