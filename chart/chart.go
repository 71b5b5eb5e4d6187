// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders benchmark comparisons and thread sweeps of
// the categorization engine.
//
// Each constructor returns a *Chart, which is written out with
// Output.Save. Charts are drawn with gonum.org/v1/plot and can be
// saved as PDF (the default), PNG or SVG.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Chart is a plot ready to be written to a file.
type Chart struct {
	// Name is the file name of the chart without extension.
	Name string

	Plot          *plot.Plot
	Width, Height vg.Length
}

// Formats lists the supported output formats.
var Formats = []string{"pdf", "png", "svg"}

// An Output writes charts to a directory.
type Output struct {
	Dir string

	// Format is one of Formats. The empty string means "pdf".
	Format string

	// DPI is the resolution of PNG output. Zero means 300.
	DPI int
}

func (o Output) format() string {
	if o.Format == "" {
		return "pdf"
	}
	return o.Format
}

// Path returns the file name Save would use for c.
func (o Output) Path(c *Chart) string {
	return filepath.Join(o.Dir, c.Name+"."+o.format())
}

func (o Output) canvas(w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch o.format() {
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "png":
		dpi := o.DPI
		if dpi == 0 {
			dpi = 300
		}
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}, nil
	}
	return nil, fmt.Errorf("unknown chart format %q", o.Format)
}

// Save draws c and writes it to o.Dir, creating the directory if
// needed. It returns the path of the written file.
func (o Output) Save(c *Chart) (string, error) {
	can, err := o.canvas(c.Width, c.Height)
	if err != nil {
		return "", err
	}
	if o.Dir != "" {
		if err := os.MkdirAll(o.Dir, 0777); err != nil {
			return "", err
		}
	}
	file := o.Path(c)
	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	c.Plot.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return file, nil
}

var (
	lightCoral = color.RGBA{R: 240, G: 128, B: 128, A: 255}
	skyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	histBlue   = color.NRGBA{B: 0xFF, A: 0x99}
	fitRed     = color.RGBA{R: 0xFF, A: 0xFF}
	lineBlue   = color.RGBA{B: 0xFF, A: 0xFF}
)

// finite returns v, or 0 if v is NaN or infinite. Plotters reject
// non-finite values, so missing measurements are drawn as empty bars.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// round2 formats v rounded to two decimal places without trailing
// zeros.
func round2(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// rotateX slants the X tick labels so long section names don't
// overlap.
func rotateX(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

// valueLabels returns labels of the given size for the given points.
// yAlign positions each label relative to its point. colors, if
// non-nil, gives the color of each label.
//
// Labels use the regular face only: vgpdf cannot resolve the bold
// Liberation faces.
func valueLabels(xys plotter.XYs, labels []string, yAlign draw.YAlignment, size vg.Length, colors []color.Color) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		sty := &l.TextStyle[i]
		sty.XAlign = draw.XCenter
		sty.YAlign = yAlign
		sty.Font.Size = size
		if colors != nil {
			sty.Color = colors[i]
		}
	}
	return l, nil
}

// labelSize is the size of value labels on section charts.
var labelSize = vg.Points(10)

// bar returns a single-bar chart at position x.
func bar(x, v float64, width vg.Length, clr color.Color) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values{finite(v)}, width)
	if err != nil {
		return nil, err
	}
	b.XMin = x
	b.Color = clr
	b.LineStyle.Width = 0
	return b, nil
}
