// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import "testing"

func TestBinarize(t *testing.T) {
	cases := []struct {
		name      string
		greyscale []Pixel
		threshold Pixel
		want      []Pixel
	}{
		{"basic", []Pixel{0, 5, 100, 101, MaxPixel}, 100, []Pixel{0, 0, 0, MaxPixel, MaxPixel}},
		{"tietoblack", []Pixel{100, 100}, 100, []Pixel{0, 0}},
		{"zerokeptontie", []Pixel{0, 50, MaxPixel}, 0, []Pixel{0, MaxPixel, MaxPixel}},
		{"maxkeptontie", []Pixel{0, 50, MaxPixel}, MaxPixel, []Pixel{0, 0, MaxPixel}},
		{"allzero", []Pixel{0, 0, 0, 0}, 50, []Pixel{0, 0, 0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			greyscale := make([]Pixel, len(c.greyscale))
			copy(greyscale, c.greyscale)
			Binarize(greyscale, c.threshold)
			for i := range greyscale {
				if greyscale[i] != c.want[i] {
					t.Fatalf("Pixel %d is %d, expected %d", i, greyscale[i], c.want[i])
				}
			}
		})
	}
}

func TestBinarizeExtremesOnly(t *testing.T) {
	greyscale := variedbuf()
	Binarize(greyscale, 130)
	for i, p := range greyscale {
		if p != 0 && p != MaxPixel {
			t.Fatalf("Pixel %d is %d after binarization, expected only 0 or %d", i, p, MaxPixel)
		}
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	greyscale := variedbuf()
	Binarize(greyscale, 130)

	once := make([]Pixel, len(greyscale))
	copy(once, greyscale)

	Binarize(greyscale, 130)
	for i := range greyscale {
		if greyscale[i] != once[i] {
			t.Fatalf("Second binarization changed pixel %d from %d to %d", i, once[i], greyscale[i])
		}
	}
}
