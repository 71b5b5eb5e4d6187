// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runstat"
)

// BellName returns the chart name for the bell curve of section in
// the given mode ("seq" or "par").
func BellName(mode, section string) string {
	return "bell_curve_" + mode + "_" + strings.ReplaceAll(section, " ", "_")
}

// BellCurve charts a density histogram of values with a fitted normal
// distribution. mode is "seq" or "par" and only affects the chart
// name and title.
func BellCurve(mode, section string, values []float64) (*Chart, error) {
	s := runstat.NewSample(values)
	if s.N() == 0 {
		return nil, fmt.Errorf("%s: no values", section)
	}
	mu, sigma := s.Mean(), s.PopStdDev()

	p := plot.New()
	kind := "Sequential"
	if mode == "par" {
		kind = "Parallel"
	}
	p.Title.Text = fmt.Sprintf("Bell Curve - %s: %s", kind, section)
	p.X.Label.Text = "Time (ms)"
	p.Y.Label.Text = "Density"
	p.Add(plotter.NewGrid())

	h, err := plotter.NewHist(plotter.Values(s.Values), 10)
	if err != nil {
		return nil, err
	}
	h.Normalize(1)
	h.FillColor = histBlue
	h.LineStyle.Color = color.Black
	p.Add(h)

	if sigma > 0 {
		lo, hi := s.Bounds()
		dist := stats.NormalDist{Mu: mu, Sigma: sigma}
		fit := plotter.NewFunction(dist.PDF)
		fit.XMin, fit.XMax = lo, hi
		fit.Samples = 100
		fit.Color = fitRed
		fit.Width = vg.Points(2)
		p.Add(fit)
		p.Legend.Add(fmt.Sprintf("Normal Dist. μ=%.2f, σ=%.2f", mu, sigma), fit)
		p.Legend.Top = true
	}

	return &Chart{Name: BellName(mode, section), Plot: p, Width: 8 * vg.Inch, Height: 6 * vg.Inch}, nil
}
