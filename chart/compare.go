// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runproc"
)

var errNoSections = errors.New("no sections in common")

// RatioBars charts the ratio of mean sequential to mean parallel time
// for each section.
func RatioBars(c *runproc.Comparison) (*Chart, error) {
	if len(c.Sections) == 0 {
		return nil, errNoSections
	}
	p := plot.New()
	p.Title.Text = "Ratio of Sequential to Parallel Processing Time of TF-IDF Vectorization"
	p.X.Label.Text = "Sections"
	p.Y.Label.Text = "Time Ratio (Sequential / Parallel)"

	vals := make(plotter.Values, len(c.Sections))
	names := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		vals[i] = finite(s.Ratio)
		names[i] = s.Section + " Ratio"
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	rotateX(p)
	p.Y.Min = 0

	return &Chart{Name: "time_differences_plot", Plot: p, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// CompareBars charts the log-transformed mean time of each section
// as grouped sequential and parallel bars.
func CompareBars(c *runproc.Comparison) (*Chart, error) {
	n := len(c.Sections)
	if n == 0 {
		return nil, errNoSections
	}
	p := plot.New()
	p.Title.Text = "Comparison of Sequential and Parallel Processing Times (Log Scale)"
	p.X.Label.Text = "Sections"
	p.Y.Label.Text = "Log-Transformed Average Time (ms)"

	seq := make(plotter.Values, n)
	par := make(plotter.Values, n)
	names := make([]string, n)
	for i, s := range c.Sections {
		seq[i], par[i] = finite(s.LogSeq), finite(s.LogPar)
		names[i] = runfmt.ShortName(s.Section)
	}

	w := vg.Points(30)
	add := func(label string, vals plotter.Values, clr color.Color, offset vg.Length) error {
		b, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return err
		}
		b.Color = clr
		b.LineStyle.Width = 0
		b.Offset = offset

		xys := make(plotter.XYs, len(vals))
		labels := make([]string, len(vals))
		for i, v := range vals {
			xys[i] = plotter.XY{X: float64(i), Y: v}
			labels[i] = round2(v)
		}
		l, err := valueLabels(xys, labels, draw.YBottom, labelSize, nil)
		if err != nil {
			return err
		}
		l.Offset = vg.Point{X: offset}

		p.Add(b, l)
		p.Legend.Add(label, b)
		return nil
	}
	if err := add("Sequential", seq, lightCoral, -w/2); err != nil {
		return nil, err
	}
	if err := add("Parallel", par, skyBlue, w/2); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	p.NominalX(names...)
	rotateX(p)
	p.Y.Min = 0

	return &Chart{Name: "time_comparison_plot", Plot: p, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// AccuracyBars charts the mean sequential and parallel accuracy on a
// [0,1] scale.
func AccuracyBars(c *runproc.Comparison) (*Chart, error) {
	p := plot.New()
	p.Title.Text = "Comparison of Sequential and Parallel Categorization Accuracy"
	p.X.Label.Text = "Accuracy"
	p.Y.Label.Text = "Average Accuracy"

	w := vg.Points(60)
	accs := []float64{c.AccuracySeq, c.AccuracyPar}
	for i, item := range []struct {
		label string
		clr   color.Color
	}{{"Sequential", lightCoral}, {"Parallel", skyBlue}} {
		b, err := bar(float64(i), accs[i], w, item.clr)
		if err != nil {
			return nil, err
		}
		p.Add(b)
		p.Legend.Add(item.label, b)
	}
	l, err := valueLabels(plotter.XYs{{X: 0, Y: finite(accs[0])}, {X: 1, Y: finite(accs[1])}},
		[]string{round2(accs[0]), round2(accs[1])}, draw.YBottom, labelSize, nil)
	if err != nil {
		return nil, err
	}
	p.Add(l)
	p.Legend.Top = true
	p.NominalX("Sequential", "Parallel")
	p.Y.Min, p.Y.Max = 0, 1

	return &Chart{Name: "accuracy_comparison_plot", Plot: p, Width: 6 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// SpeedupLine charts the pairwise speedup of each section as a line
// with labeled points.
func SpeedupLine(speedups []runproc.SectionValue) (*Chart, error) {
	if len(speedups) == 0 {
		return nil, errNoSections
	}
	p := plot.New()
	p.Title.Text = "Speedup Comparison: Sequential vs Parallel Processing"
	p.X.Label.Text = "Sections"
	p.Y.Label.Text = "Speedup (Sequential / Parallel Time)"

	xys := make(plotter.XYs, len(speedups))
	names := make([]string, len(speedups))
	labels := make([]string, len(speedups))
	for i, s := range speedups {
		xys[i] = plotter.XY{X: float64(i), Y: finite(s.Value)}
		names[i] = s.Section
		labels[i] = round2(s.Value)
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = lineBlue
	points.Color = lineBlue
	l, err := valueLabels(xys, labels, draw.YBottom, labelSize, nil)
	if err != nil {
		return nil, err
	}
	l.Offset = vg.Point{Y: vg.Points(4)}

	p.Add(line, points, l)
	p.Legend.Add("Speedup", line, points)
	p.Legend.Top = true
	p.NominalX(names...)
	rotateX(p)

	return &Chart{Name: "speedup_comparison_line_plot", Plot: p, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}
