// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runproc"
)

var testComparison = &runproc.Comparison{
	Sections: []runproc.SectionComparison{
		{Section: "Vectorization", Seq: 100, Par: 25, Ratio: 4, LogSeq: math.Log1p(100), LogPar: math.Log1p(25)},
		{Section: "Unknown Classification", Seq: 10, Par: 0, Ratio: math.NaN(), LogSeq: math.Log1p(10), LogPar: 0},
	},
	AccuracySeq: 0.91,
	AccuracyPar: math.NaN(),
}

func TestSave(t *testing.T) {
	magic := map[string][]byte{
		"pdf": []byte("%PDF"),
		"png": []byte("\x89PNG"),
		"svg": []byte("<?xml"),
	}
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			c, err := RatioBars(testComparison)
			if err != nil {
				t.Fatal(err)
			}
			o := Output{Dir: filepath.Join(t.TempDir(), "graphs"), Format: format, DPI: 50}
			path, err := o.Save(c)
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.Join(o.Dir, "time_differences_plot."+format); path != want {
				t.Errorf("Save wrote %s, want %s", path, want)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, magic[format]) {
				t.Errorf("%s output starts with %q", format, data[:min(len(data), 8)])
			}
		})
	}

	c, _ := RatioBars(testComparison)
	if _, err := (Output{Dir: t.TempDir(), Format: "gif"}).Save(c); err == nil {
		t.Errorf("Save with unknown format succeeded")
	}
}

func TestCharts(t *testing.T) {
	threads := []int{1, 2, 4, 8}
	build := map[string]func() (*Chart, error){
		"time_differences_plot":        func() (*Chart, error) { return RatioBars(testComparison) },
		"time_comparison_plot":         func() (*Chart, error) { return CompareBars(testComparison) },
		"accuracy_comparison_plot":     func() (*Chart, error) { return AccuracyBars(testComparison) },
		"speedup_comparison_line_plot": func() (*Chart, error) {
			return SpeedupLine([]runproc.SectionValue{{Section: "TF-IDF", Value: 3}, {Section: "Vectorization", Value: math.NaN()}})
		},
		"speedup-dataset-3": func() (*Chart, error) {
			return SweepSpeedup(3, threads, []Series{
				{"Vectorization", []float64{1, 1.9, 3.5, math.NaN()}},
				{"TF-IDF", []float64{1, 2, 4, 8}},
			})
		},
		"accuracy-dataset-1": func() (*Chart, error) { return AccuracyThreadBars(1, threads, []float64{0.9, 0.9, 0.05, math.NaN()}) },
		"precision-plot-d2":  func() (*Chart, error) { return PrecisionThreadBars(2, threads, []float64{0.99, 0.98, 0.97, 0.96}) },
		"time-1":             func() (*Chart, error) { return TimeThreadBars(1, threads, []float64{4, 2, 1, 0.5}) },
		"bell_curve_seq_Unknown_Classification": func() (*Chart, error) {
			return BellCurve("seq", "Unknown Classification", []float64{10, 12, 11, 13, 9, 10, math.NaN()})
		},
		"bell_curve_par_TF-IDF": func() (*Chart, error) { return BellCurve("par", "TF-IDF", []float64{5, 5}) },
	}
	o := Output{Dir: t.TempDir()}
	for name, f := range build {
		c, err := f()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if c.Name != name {
			t.Errorf("got chart name %s, want %s", c.Name, name)
		}
		if _, err := o.Save(c); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestThreadBarsFormats(t *testing.T) {
	threads := []int{1, 2}
	build := []func() (*Chart, error){
		func() (*Chart, error) { return AccuracyThreadBars(1, threads, []float64{0.9, 0.85}) },
		func() (*Chart, error) { return PrecisionThreadBars(1, threads, []float64{0.99, 0.97}) },
		func() (*Chart, error) { return TimeThreadBars(1, threads, []float64{2, 1}) },
	}
	for _, format := range Formats {
		o := Output{Dir: t.TempDir(), Format: format, DPI: 50}
		for _, f := range build {
			c, err := f()
			if err != nil {
				t.Fatal(err)
			}
			path, err := o.Save(c)
			if err != nil {
				t.Errorf("%s as %s: %v", c.Name, format, err)
				continue
			}
			if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
				t.Errorf("%s: empty or missing output: %v", path, err)
			}
		}
	}
}

func TestChartErrors(t *testing.T) {
	empty := &runproc.Comparison{}
	if _, err := RatioBars(empty); err == nil {
		t.Errorf("RatioBars with no sections succeeded")
	}
	if _, err := CompareBars(empty); err == nil {
		t.Errorf("CompareBars with no sections succeeded")
	}
	if _, err := SpeedupLine(nil); err == nil {
		t.Errorf("SpeedupLine with no sections succeeded")
	}
	if _, err := ThreadBars(ThreadBarsSpec{Name: "x"}, []int{1, 2}, []float64{1}); err == nil {
		t.Errorf("ThreadBars with mismatched lengths succeeded")
	}
	if _, err := SweepSpeedup(1, []int{1, 2}, []Series{{"A", []float64{1}}}); err == nil {
		t.Errorf("SweepSpeedup with short series succeeded")
	}
	if _, err := SweepSpeedup(1, []int{0, 2}, []Series{{"A", []float64{1, 2}}}); err == nil {
		t.Errorf("SweepSpeedup with zero threads succeeded")
	}
	if _, err := SweepSpeedup(1, []int{8, 1}, []Series{{"A", []float64{1, 2}}}); err == nil {
		t.Errorf("SweepSpeedup with decreasing threads succeeded")
	}
	if _, err := BellCurve("seq", "A", []float64{math.NaN()}); err == nil {
		t.Errorf("BellCurve with no values succeeded")
	}
}

func TestThreadTicks(t *testing.T) {
	got := threadTicks{1, 2, 6, 1024}.Ticks(1, 1024)
	want := []plot.Tick{{Value: 1, Label: "2^0"}, {Value: 2, Label: "2^1"}, {Value: 6, Label: "6"}, {Value: 1024, Label: "2^10"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
	if got := (threadTicks{1, 2, 4}).Ticks(2, 3); len(got) != 1 {
		t.Errorf("ticks in [2,3] = %v, want one", got)
	}
}

func TestRound2(t *testing.T) {
	for _, test := range []struct {
		v    float64
		want string
	}{
		{4.605170185988092, "4.61"},
		{1, "1"},
		{0.5, "0.5"},
		{math.NaN(), "NaN"},
	} {
		if got := round2(test.v); got != test.want {
			t.Errorf("round2(%v) = %s, want %s", test.v, got, test.want)
		}
	}
}
