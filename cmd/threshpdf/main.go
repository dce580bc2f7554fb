// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// threshpdf builds a PDF report of a threshold benchmark run,
// containing the results plus the original and binarized pages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"rescribe.xyz/threshold"
)

const usage = `Usage: threshpdf [-r ratio] [-s rate] [-e estimator] inimg out.pdf

threshpdf runs every threshold estimator over a greyscale image and
saves a PDF containing a summary of the thresholds found and time
taken, followed by the original page and the page binarized with the
chosen estimator's threshold.
`

var estimators = map[string]string{
	"counting": "Counting Sort",
	"sort":     "Full Sort",
	"nth":      "Nth Element",
	"normal":   "Normal Estimate",
	"weighted": "Weighted Estimate",
	"uniform":  "Uniform Sample",
}

func main() {
	ratio := flag.Float64("r", threshold.DefaultRatio, "Target ratio of black pixels, between 0 and 1")
	rate := flag.Int("s", threshold.DefaultSampleRate, "Stride for the uniform sample estimator")
	estimator := flag.String("e", "uniform", "Estimator whose threshold is used for binarization (counting, sort, nth, normal, weighted, uniform)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if *ratio <= 0 || *ratio >= 1 {
		log.Fatalf("Ratio must be between 0 and 1, got %f\n", *ratio)
	}
	if *rate < 1 {
		log.Fatalf("Sample rate must be at least 1, got %d\n", *rate)
	}
	chosen, ok := estimators[*estimator]
	if !ok {
		log.Fatalf("Unknown estimator %s\n", *estimator)
	}

	img, err := threshold.ReadImage(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	greyscale, width, height := threshold.FromImage(img)

	results := threshold.BenchmarkAll(greyscale, width, height, *ratio, *rate)
	var t threshold.Pixel
	for _, r := range results {
		if r.Name == chosen {
			t = r.Threshold
		}
	}

	pdf := new(threshold.Fpdf)
	err = pdf.Setup()
	if err != nil {
		log.Fatalln("Error setting up PDF", err)
	}
	err = pdf.AddReport(filepath.Base(flag.Arg(0)), results, chosen)
	if err != nil {
		log.Fatalln("Error adding report page", err)
	}
	err = pdf.AddImage("original", threshold.ToImage(greyscale, width, height))
	if err != nil {
		log.Fatalln("Error adding original page", err)
	}

	threshold.Binarize(greyscale, t)
	err = pdf.AddImage("binarized", threshold.ToImage(greyscale, width, height))
	if err != nil {
		log.Fatalln("Error adding binarized page", err)
	}

	err = pdf.Save(flag.Arg(1))
	if err != nil {
		log.Fatalln("Failed to save", flag.Arg(1), err)
	}
}
