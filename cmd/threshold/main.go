// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// threshold benchmarks several ways of finding a binarization
// threshold for a greyscale image, then binarizes the image with one
// of them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/threshold"
)

const usage = `Usage: threshold [-r ratio] [-s rate] [-e estimator] inimg outimg

threshold finds a pixel value for a greyscale image which splits its
pixels into black and white at close to the target ratio, using six
different estimation methods, and reports the threshold found and the
time taken by each. The image is then binarized with the threshold
from the chosen estimator and saved as a PNG to outimg.
`

const padding = "    "

// estimators maps the short names accepted by -e to the names used
// in the estimator registry.
var estimators = map[string]string{
	"counting": "Counting Sort",
	"sort":     "Full Sort",
	"nth":      "Nth Element",
	"normal":   "Normal Estimate",
	"weighted": "Weighted Estimate",
	"uniform":  "Uniform Sample",
}

// display pretty prints the threshold value found by an estimator
// and the time it took.
func display(r threshold.Result) {
	fmt.Println(r.Name)
	fmt.Printf("%sThreshold: %d\n", padding, r.Threshold)
	fmt.Printf("%sExecution Time: %.3fs\n", padding, r.Duration.Seconds())
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
		display(r)
		if r.Name == chosen {
			t = r.Threshold
		}
	}

	threshold.Binarize(greyscale, t)
	err = threshold.WritePNG(flag.Arg(1), threshold.ToImage(greyscale, width, height))
	if err != nil {
		log.Fatalln(err)
	}
}
