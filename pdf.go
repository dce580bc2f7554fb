// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/nickjwhite/gofpdf"
)

const pageWidth = 5 // pageWidth in inches

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

// Fpdf is a report of a threshold benchmark run as a PDF: a summary
// page of the results plus a page per image.
type Fpdf struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddReport adds a summary page listing the threshold found and time
// taken by each estimator, marking the one whose threshold was used
// for binarization.
func (p *Fpdf) AddReport(name string, results []Result, chosen string) error {
	p.fpdf.AddPage()
	p.fpdf.SetXY(36, 36)
	p.fpdf.SetFont("Helvetica", "B", 14)
	p.fpdf.CellFormat(0, 20, name, "", 2, "L", false, 0, "")
	p.fpdf.SetFont("Helvetica", "", 10)
	for _, r := range results {
		line := fmt.Sprintf("%s: threshold %d in %.3fs", r.Name, r.Threshold, r.Duration.Seconds())
		if r.Name == chosen {
			line += " (used for binarization)"
		}
		p.fpdf.CellFormat(0, 14, line, "", 2, "L", false, 0, "")
	}
	return p.fpdf.Error()
}

// AddImage adds a page to the pdf containing the image, sized so the
// image fills the page.
func (p *Fpdf) AddImage(name string, img image.Image) error {
	b := img.Bounds()
	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(b.Dx()), Ht: pxToPt(b.Dy())})

	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return fmt.Errorf("Could not encode image %s: %v", name, err)
	}

	_ = p.fpdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "png"}, &buf)
	p.fpdf.ImageOptions(name, 0, 0, pxToPt(b.Dx()), pxToPt(b.Dy()), false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")
	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
