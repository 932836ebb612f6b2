// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/ulikunitz/lzw/internal/tuning"
	"github.com/wcharczuk/go-chart/v2"
)

// series converts the points into x and y values.
func series(points []tuning.Point) (xvals, yvals []float64) {
	xvals = make([]float64, 0, len(points))
	yvals = make([]float64, 0, len(points))
	for _, p := range points {
		xvals = append(xvals, float64(p.Offset)/(1<<20))
		yvals = append(yvals, p.Ratio)
	}
	return xvals, yvals
}

// plotCurves compresses the concatenation of the files with all modes and
// writes the cumulative ratio curves as SVG file. Resets are marked by
// dots.
func plotCurves(path string, files []tuning.File, chunk int) error {
	var data []byte
	for _, f := range files {
		data = append(data, f.Data...)
	}
	var s []chart.Series
	for _, m := range modes {
		points, resets, err := tuning.Curve(data, m, chunk)
		if err != nil {
			return err
		}
		xvals, yvals := series(points)
		s = append(s, chart.ContinuousSeries{
			Name:    m.String(),
			XValues: xvals,
			YValues: yvals,
		})
		if len(resets) == 0 {
			continue
		}
		xvals, yvals = series(resets)
		s = append(s, chart.ContinuousSeries{
			Name: m.String() + " resets",
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    3,
			},
			XValues: xvals,
			YValues: yvals,
		})
	}
	graph := chart.Chart{
		XAxis:  chart.XAxis{Name: "input (MiB)"},
		YAxis:  chart.YAxis{Name: "ratio"},
		Series: s,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = graph.Render(chart.SVG, fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
