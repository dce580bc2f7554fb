// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// threshgraph creates a graph of the pixel value histogram of a
// greyscale image, marking the threshold found by each estimator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"rescribe.xyz/threshold"
)

const usage = `Usage: threshgraph [-r ratio] [-s rate] inimg graph.png

threshgraph runs every threshold estimator over a greyscale image and
creates a graph of the image's pixel value histogram with a vertical
line marking each estimator's threshold, so the estimates can be
compared against the real distribution.
`

func main() {
	ratio := flag.Float64("r", threshold.DefaultRatio, "Target ratio of black pixels, between 0 and 1")
	rate := flag.Int("s", threshold.DefaultSampleRate, "Stride for the uniform sample estimator")
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

	img, err := threshold.ReadImage(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	greyscale, width, height := threshold.FromImage(img)

	results := threshold.BenchmarkAll(greyscale, width, height, *ratio, *rate)

	fn := flag.Arg(1)
	f, err := os.Create(fn)
	if err != nil {
		log.Fatalln("Error creating file", fn, err)
	}
	defer f.Close()
	err = threshold.Graph(greyscale, results, filepath.Base(flag.Arg(0)), f)
	if err != nil {
		log.Fatalln("Error creating graph", err)
	}
}
