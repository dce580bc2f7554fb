// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

//go:build pixel16

package threshold

import (
	"image"
	"image/draw"
)

// Pixel is a single greyscale sample.
type Pixel = uint16

// BitDepth is the number of bits per Pixel sample.
const BitDepth = 16

// MaxPixel is the largest value a Pixel can hold, the "white" value.
const MaxPixel = 1<<BitDepth - 1

// FromImage converts an image into a flat row-major buffer of
// greyscale samples, returning it along with the image width and
// height. image.Gray16 stores samples as big endian byte pairs, so
// unlike the 8 bit version this always copies.
func FromImage(img image.Image) ([]Pixel, int, int) {
	b := img.Bounds()
	gray, ok := img.(*image.Gray16)
	if !ok || b.Min.X != 0 || b.Min.Y != 0 || gray.Stride != 2*b.Dx() {
		gray = image.NewGray16(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	}
	greyscale := make([]Pixel, b.Dx()*b.Dy())
	for i := range greyscale {
		greyscale[i] = Pixel(gray.Pix[2*i])<<8 | Pixel(gray.Pix[2*i+1])
	}
	return greyscale, b.Dx(), b.Dy()
}

// ToImage packs a flat buffer of greyscale samples back into an
// image.
func ToImage(greyscale []Pixel, width int, height int) image.Image {
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for i, p := range greyscale {
		img.Pix[2*i] = uint8(p >> 8)
		img.Pix[2*i+1] = uint8(p)
	}
	return img
}
