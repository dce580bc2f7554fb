// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/tiff"
)

// ReadImage decodes the image at path. PNG, JPEG and TIFF are
// supported.
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Could not open image %s: %v", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Could not decode image %s: %v", path, err)
	}
	return img, nil
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Could not create file %s: %v", path, err)
	}
	defer f.Close()
	err = png.Encode(f, img)
	if err != nil {
		return fmt.Errorf("Could not encode image %s: %v", path, err)
	}
	return nil
}
