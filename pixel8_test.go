// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

//go:build !pixel16

package threshold

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	want := []Pixel{10, 20, 30, 40, 50, 60}
	for i, p := range want {
		img.SetGray(i%3, i/3, color.Gray{p})
	}

	greyscale, width, height := FromImage(img)
	if width != 3 || height != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", width, height)
	}
	if len(greyscale) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(greyscale))
	}
	for i := range want {
		if greyscale[i] != want[i] {
			t.Errorf("Pixel %d is %d, expected %d", i, greyscale[i], want[i])
		}
	}
}

func TestFromImageConverts(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{255, 255, 255, 255})

	greyscale, width, height := FromImage(img)
	if width != 2 || height != 1 {
		t.Fatalf("Expected 2x1, got %dx%d", width, height)
	}
	if greyscale[0] != 0 || greyscale[1] != MaxPixel {
		t.Errorf("Expected [0 %d], got %v", MaxPixel, greyscale)
	}
}

func TestToImage(t *testing.T) {
	greyscale := []Pixel{10, 20, 30, 40, 50, 60}
	img := ToImage(greyscale, 3, 2)

	b := img.Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", b.Dx(), b.Dy())
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("Expected an *image.Gray, got %T", img)
	}
	for i, p := range greyscale {
		if gray.GrayAt(i%3, i/3).Y != p {
			t.Errorf("Pixel %d is %d, expected %d", i, gray.GrayAt(i%3, i/3).Y, p)
		}
	}
}
