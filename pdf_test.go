// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPdf(t *testing.T) {
	greyscale := variedbuf()
	results := BenchmarkAll(greyscale, 8, 8, DefaultRatio, DefaultSampleRate)

	pdf := new(Fpdf)
	err := pdf.Setup()
	if err != nil {
		t.Fatalf("Error setting up PDF: %v", err)
	}
	err = pdf.AddReport("test", results, "Uniform Sample")
	if err != nil {
		t.Fatalf("Error adding report page: %v", err)
	}
	err = pdf.AddImage("original", ToImage(greyscale, 8, 8))
	if err != nil {
		t.Fatalf("Error adding image page: %v", err)
	}

	fn := filepath.Join(t.TempDir(), "test.pdf")
	err = pdf.Save(fn)
	if err != nil {
		t.Fatalf("Error saving PDF: %v", err)
	}
	fi, err := os.Stat(fn)
	if err != nil {
		t.Fatalf("Error statting saved PDF: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("Saved PDF is empty")
	}
}
