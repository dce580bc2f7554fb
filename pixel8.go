// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

//go:build !pixel16

package threshold

import (
	"image"
	"image/draw"
)

// Pixel is a single greyscale sample.
type Pixel = uint8

// BitDepth is the number of bits per Pixel sample.
const BitDepth = 8

// MaxPixel is the largest value a Pixel can hold, the "white" value.
const MaxPixel = 1<<BitDepth - 1

// FromImage converts an image into a flat row-major buffer of
// greyscale samples, returning it along with the image width and
// height. Where the image is already an appropriate greyscale image
// the underlying buffer is shared rather than copied.
func FromImage(img image.Image) ([]Pixel, int, int) {
	b := img.Bounds()
	gray, ok := img.(*image.Gray)
	if !ok || b.Min.X != 0 || b.Min.Y != 0 || gray.Stride != b.Dx() {
		gray = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	}
	return gray.Pix, b.Dx(), b.Dy()
}

// ToImage wraps a flat buffer of greyscale samples into an image,
// sharing the buffer rather than copying it.
func ToImage(greyscale []Pixel, width int, height int) image.Image {
	return &image.Gray{Pix: greyscale, Stride: width, Rect: image.Rect(0, 0, width, height)}
}
