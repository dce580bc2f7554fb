// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

// Binarize thresholds greyscale in place, so that afterwards every
// pixel is either 0 or MaxPixel. Pixels above the threshold become
// white and pixels below it become black. Pixels exactly on the
// threshold also become black, except that pixels which are already 0
// or MaxPixel are left as they are, so binarizing an already binary
// buffer changes nothing.
func Binarize(greyscale []Pixel, threshold Pixel) {
	for pixel, p := range greyscale {
		switch {
		case p > threshold:
			greyscale[pixel] = MaxPixel
		case p < threshold:
			greyscale[pixel] = 0
		case p != 0 && p != MaxPixel:
			greyscale[pixel] = 0
		}
	}
}
