// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runstat"
)

// A Series is a named sequence of values, one per thread count.
type Series struct {
	Name   string
	Values []float64
}

// threadTicks marks each thread count on a log axis. Powers of two
// are labeled 2^i.
type threadTicks []int

func (t threadTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, th := range t {
		v := float64(th)
		if v < min || v > max {
			continue
		}
		label := fmt.Sprint(th)
		if e := math.Log2(v); e == math.Trunc(e) {
			label = fmt.Sprintf("2^%d", int(e))
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

// SweepSpeedup charts one speedup line per series against thread
// count on a log2 axis. Non-finite points are left out of their line.
func SweepSpeedup(dataset int, threads []int, series []Series) (*Chart, error) {
	if len(series) == 0 || len(threads) == 0 {
		return nil, errors.New("nothing to plot")
	}
	for i, th := range threads {
		if th <= 0 {
			return nil, fmt.Errorf("thread count %d not positive", th)
		}
		if i > 0 && th <= threads[i-1] {
			return nil, fmt.Errorf("thread counts not increasing: %d after %d", th, threads[i-1])
		}
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Speedup Graph for Dataset-%d", dataset)
	p.X.Label.Text = "Number of Threads"
	p.Y.Label.Text = "Speedup"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = threadTicks(threads)
	p.Add(plotter.NewGrid())

	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", max(3, len(series)))
	if err != nil {
		return nil, err
	}
	colors := pal.Colors()
	for i, s := range series {
		if len(s.Values) != len(threads) {
			return nil, fmt.Errorf("series %s has %d values for %d thread counts", s.Name, len(s.Values), len(threads))
		}
		var xys plotter.XYs
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(threads[j]), Y: v})
		}
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = colors[i%len(colors)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true
	p.X.Min, p.X.Max = float64(threads[0]), float64(threads[len(threads)-1])

	return &Chart{Name: fmt.Sprintf("speedup-dataset-%d", dataset), Plot: p, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// A ThreadBarsSpec describes a bar chart with one bar per thread
// count.
type ThreadBarsSpec struct {
	Name   string
	Title  string
	YLabel string
}

// gradient returns n colors spread over the lower 85% of a
// perceptually uniform color map.
func gradient(n int) ([]color.Color, error) {
	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(1)
	out := make([]color.Color, n)
	for i, v := range runstat.Linspace(0, 0.85, n) {
		c, err := cm.At(v)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// ThreadBars charts values as one colored bar per thread count. Each
// bar carries its value at half height, in white when the value
// exceeds a tenth of the largest value and black otherwise.
func ThreadBars(spec ThreadBarsSpec, threads []int, values []float64) (*Chart, error) {
	if len(values) != len(threads) || len(values) == 0 {
		return nil, fmt.Errorf("%s: have %d values for %d thread counts", spec.Name, len(values), len(threads))
	}
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = "Number of Threads"
	p.Y.Label.Text = spec.YLabel

	colors, err := gradient(len(values))
	if err != nil {
		return nil, err
	}
	hi := math.Inf(-1)
	for _, v := range values {
		if !math.IsNaN(v) {
			hi = math.Max(hi, v)
		}
	}

	names := make([]string, len(threads))
	xys := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	textColors := make([]color.Color, len(values))
	for i, v := range values {
		b, err := bar(float64(i), v, vg.Points(30), colors[i])
		if err != nil {
			return nil, err
		}
		p.Add(b)
		names[i] = fmt.Sprint(threads[i])
		xys[i] = plotter.XY{X: float64(i), Y: finite(v) / 2}
		labels[i] = fmt.Sprintf("%.2f", v)
		textColors[i] = color.Black
		if v > hi*0.1 {
			textColors[i] = color.White
		}
	}
	l, err := valueLabels(xys, labels, draw.YTop, vg.Points(12), textColors)
	if err != nil {
		return nil, err
	}
	p.Add(l)
	p.NominalX(names...)
	p.Y.Min = math.Min(p.Y.Min, 0)

	return &Chart{Name: spec.Name, Plot: p, Width: 10 * vg.Inch, Height: 6 * vg.Inch}, nil
}

// AccuracyThreadBars charts mean accuracy per thread count.
func AccuracyThreadBars(dataset int, threads []int, means []float64) (*Chart, error) {
	return ThreadBars(ThreadBarsSpec{
		Name:   fmt.Sprintf("accuracy-dataset-%d", dataset),
		Title:  fmt.Sprintf("Mean Accuracy vs. Number of Threads w/ Dataset %d", dataset),
		YLabel: "Mean Accuracy",
	}, threads, means)
}

// PrecisionThreadBars charts accuracy precision per thread count.
func PrecisionThreadBars(dataset int, threads []int, precisions []float64) (*Chart, error) {
	return ThreadBars(ThreadBarsSpec{
		Name:   fmt.Sprintf("precision-plot-d%d", dataset),
		Title:  fmt.Sprintf("Precision vs. Number of Threads w/ Dataset %d", dataset),
		YLabel: "Precision",
	}, threads, precisions)
}

// TimeThreadBars charts the mean total time in minutes per thread
// count.
func TimeThreadBars(dataset int, threads []int, minutes []float64) (*Chart, error) {
	return ThreadBars(ThreadBarsSpec{
		Name:   fmt.Sprintf("time-%d", dataset),
		Title:  fmt.Sprintf("Mean Time vs. Number of Threads w/ Dataset %d", dataset),
		YLabel: "Mean Time (minutes)",
	}, threads, minutes)
}
