// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package threshold

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const xticknum = 16

var linecolours = []drawing.Color{
	chart.ColorAlternateGreen,
	chart.ColorOrange,
	chart.ColorRed,
	chart.ColorCyan,
	chart.ColorAlternateGray,
	chart.ColorBlack,
}

// createLine creates a vertical line at x for a graph
func createLine(x float64, maxy float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, maxy},
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of the pixel value histogram of a greyscale
// buffer, with a marked vertical line for each estimator result.
func Graph(greyscale []Pixel, results []Result, title string, w io.Writer) error {
	if len(greyscale) == 0 {
		return errors.New("No pixels to graph")
	}

	count := make([]int, 1<<BitDepth)
	for _, p := range greyscale {
		count[p]++
	}

	// Create main xvalues, yvalues and ticks
	var xvalues, yvalues []float64
	var ticks []chart.Tick
	maxcount := 0
	for v, n := range count {
		xvalues = append(xvalues, float64(v))
		yvalues = append(yvalues, float64(n))
		if n > maxcount {
			maxcount = n
		}
		if v%((1<<BitDepth)/xticknum) == 0 {
			ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
		}
	}
	ticks = append(ticks, chart.Tick{Value: float64(MaxPixel), Label: fmt.Sprintf("%d", MaxPixel)})

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	// Create a line and annotation for each estimator threshold
	series := []chart.Series{mainSeries}
	var annotations []chart.Value2
	for i, r := range results {
		c := linecolours[i%len(linecolours)]
		series = append(series, createLine(float64(r.Threshold), float64(maxcount), c))
		annotations = append(annotations, chart.Value2{
			Label:  fmt.Sprintf("%s: %d", r.Name, r.Threshold),
			XValue: float64(r.Threshold),
			YValue: float64(maxcount) * (1.0 - float64(i)/float64(2*len(results))),
		})
	}
	series = append(series, chart.AnnotationSeries{
		Annotations: annotations,
	})

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Pixel value",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: float64(MaxPixel),
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Count",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: float64(maxcount),
			},
		},
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}
