// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tfidfplot renders charts from the processed benchmark results of
// the TF-IDF categorization engine.
//
// Usage:
//
//	tfidfplot [flags]
//
// Tfidfplot reads processed-data CSVs from -dir using the harness
// naming convention and writes one file per chart to -out. The chart
// families are:
//
//	compare    sequential vs. parallel time, ratio, accuracy and speedup
//	           of the single-comparison run (sequential-processed.csv,
//	           parallel-processed.csv)
//	bell       histogram with fitted normal curve of every timed section
//	           of the single-comparison run
//	speedup    per-section speedup against thread count, per dataset
//	accuracy   mean accuracy per thread count, per dataset
//	precision  accuracy precision (1-σ/μ) per thread count, per dataset
//	time       total mean time in minutes per thread count, per dataset
//
// Run with no flags from the repository root, tfidfplot reads and
// writes the harness's default directories.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/aclements/go-gg/table"
	"golang.org/x/sync/errgroup"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/chart"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runproc"
)

func main() {
	log.SetPrefix("tfidfplot: ")
	log.SetFlags(0)
	if err := tfidfplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// families lists the chart families in the order they are rendered.
var families = []string{"compare", "bell", "speedup", "accuracy", "precision", "time"}

// A job builds one or more charts.
type job func() ([]*chart.Chart, error)

func tfidfplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("tfidfplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: tfidfplot [flags]\n")
		flags.PrintDefaults()
	}
	flagDir := flags.String("dir", runfmt.DefaultDataDir, "read processed data from `dir`")
	flagOut := flags.String("out", runfmt.DefaultGraphDir, "write charts to `dir`")
	flagDatasets := flags.String("datasets", "1,2,3", "comma-separated `list` of dataset numbers for thread sweeps")
	flagThreads := flags.String("threads", "", "comma-separated `list` of thread counts for thread sweeps (default 1,2,4,...,1024)")
	flagCharts := flags.String("charts", "all", "comma-separated `list` of chart families: "+strings.Join(families, ", ")+", or all")
	flagFormat := flags.String("format", "pdf", "output `format`: "+strings.Join(chart.Formats, ", "))
	flagJ := flags.Int("j", runtime.GOMAXPROCS(0), "render up to `n` charts in parallel")
	flagV := flags.Bool("v", false, "print the name of each chart written")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return flag.ErrHelp
	}

	datasets, err := runfmt.ParseInts(*flagDatasets)
	if err != nil {
		return fmt.Errorf("-datasets: %w", err)
	}
	threads := runfmt.Threads
	if *flagThreads != "" {
		if threads, err = runfmt.ParseInts(*flagThreads); err != nil {
			return fmt.Errorf("-threads: %w", err)
		}
		if err := checkThreads(threads); err != nil {
			return fmt.Errorf("-threads: %w", err)
		}
	}
	want, err := parseFamilies(*flagCharts)
	if err != nil {
		return err
	}
	if !validFormat(*flagFormat) {
		return fmt.Errorf("unknown -format %q", *flagFormat)
	}

	l := runfmt.Layout{Dir: *flagDir}
	out := chart.Output{Dir: *flagOut, Format: *flagFormat}
	var mu sync.Mutex
	warn := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(wErr, "warning: %v\n", err)
	}
	jobs := plan(l, want, datasets, threads, warn)

	var written []string
	var g errgroup.Group
	g.SetLimit(max(*flagJ, 1))
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			charts, err := j()
			if err != nil {
				return err
			}
			for _, c := range charts {
				path, err := out.Save(c)
				if err != nil {
					return err
				}
				mu.Lock()
				written = append(written, path)
				mu.Unlock()
			}
			return nil
		})
	}
	err = g.Wait()
	if *flagV {
		sort.Strings(written)
		for _, p := range written {
			fmt.Fprintln(w, p)
		}
	}
	return err
}

// checkThreads reports an error unless threads is a non-empty,
// strictly increasing list of positive counts. The first count is the
// speedup baseline.
func checkThreads(threads []int) error {
	if len(threads) == 0 {
		return errors.New("no thread counts")
	}
	for i, th := range threads {
		if th <= 0 {
			return fmt.Errorf("thread count %d not positive", th)
		}
		if i > 0 && th <= threads[i-1] {
			return fmt.Errorf("thread counts must be increasing, got %d after %d", th, threads[i-1])
		}
	}
	return nil
}

func parseFamilies(s string) (map[string]bool, error) {
	want := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
		case f == "all":
			for _, name := range families {
				want[name] = true
			}
		case contains(families, f):
			want[f] = true
		default:
			return nil, fmt.Errorf("unknown chart family %q", f)
		}
	}
	return want, nil
}

func validFormat(f string) bool {
	return contains(chart.Formats, f)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// plan returns the jobs rendering the wanted chart families. Input
// files are read once, by whichever job first needs them. Charts that
// are skipped for lack of data are reported through warn.
func plan(l runfmt.Layout, want map[string]bool, datasets, threads []int, warn func(error)) []job {
	var jobs []job

	pair := sync.OnceValues(func() (*[2]*table.Table, error) {
		seq, err := runfmt.ReadFile(l.Sequential(0))
		if err != nil {
			return nil, err
		}
		par, err := runfmt.ReadFile(l.Parallel(2, 0))
		if err != nil {
			return nil, err
		}
		return &[2]*table.Table{seq, par}, nil
	})
	if want["compare"] {
		jobs = append(jobs, func() ([]*chart.Chart, error) {
			p, err := pair()
			if err != nil {
				return nil, err
			}
			return compareCharts(l, p[0], p[1], warn)
		})
	}
	if want["bell"] {
		jobs = append(jobs, func() ([]*chart.Chart, error) {
			p, err := pair()
			if err != nil {
				return nil, err
			}
			return bellCharts(p[0], p[1])
		})
	}

	for _, d := range datasets {
		d := d
		sweep := sync.OnceValues(func() (*runproc.Sweep, error) {
			return runproc.LoadSweep(l, d, threads)
		})
		for _, f := range families[2:] {
			if !want[f] {
				continue
			}
			f := f
			jobs = append(jobs, func() ([]*chart.Chart, error) {
				s, err := sweep()
				if err != nil {
					return nil, err
				}
				c, err := sweepChart(f, s)
				if err != nil {
					return nil, fmt.Errorf("dataset %d: %s: %w", d, f, err)
				}
				return []*chart.Chart{c}, nil
			})
		}
	}
	return jobs
}

// compareCharts draws the single-comparison charts. The accuracy
// chart is skipped, with a warning, unless both files have Accuracy.
func compareCharts(l runfmt.Layout, seq, par *table.Table, warn func(error)) ([]*chart.Chart, error) {
	cmp := runproc.Compare(seq, par)
	fs := []func(*runproc.Comparison) (*chart.Chart, error){chart.RatioBars, chart.CompareBars}
	err := runfmt.Require(seq, l.Sequential(0), runfmt.Accuracy)
	if err == nil {
		err = runfmt.Require(par, l.Parallel(2, 0), runfmt.Accuracy)
	}
	if err != nil {
		warn(fmt.Errorf("skipping accuracy_comparison_plot: %w", err))
	} else {
		fs = append(fs, chart.AccuracyBars)
	}
	var charts []*chart.Chart
	for _, f := range fs {
		c, err := f(cmp)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	c, err := chart.SpeedupLine(runproc.PairwiseSpeedup(seq, par))
	if err != nil {
		return nil, err
	}
	return append(charts, c), nil
}

func bellCharts(seq, par *table.Table) ([]*chart.Chart, error) {
	var charts []*chart.Chart
	for _, in := range []struct {
		mode string
		t    *table.Table
	}{{"seq", seq}, {"par", par}} {
		for _, sec := range runfmt.SectionNames(runfmt.Timings(in.t)) {
			c, err := chart.BellCurve(in.mode, sec, runfmt.Values(in.t, sec))
			if err != nil {
				return nil, err
			}
			charts = append(charts, c)
		}
	}
	return charts, nil
}

func sweepChart(family string, s *runproc.Sweep) (*chart.Chart, error) {
	switch family {
	case "speedup":
		var series []chart.Series
		for _, sec := range runfmt.Sections {
			v, err := s.Speedups(sec)
			if err != nil {
				return nil, err
			}
			series = append(series, chart.Series{Name: sec, Values: v})
		}
		return chart.SweepSpeedup(s.Dataset, s.Threads, series)
	case "accuracy":
		v, err := s.AccuracyMeans()
		if err != nil {
			return nil, err
		}
		return chart.AccuracyThreadBars(s.Dataset, s.Threads, v)
	case "precision":
		v, err := s.Precisions()
		if err != nil {
			return nil, err
		}
		return chart.PrecisionThreadBars(s.Dataset, s.Threads, v)
	case "time":
		v, err := s.TotalMinutes()
		if err != nil {
			return nil, err
		}
		return chart.TimeThreadBars(s.Dataset, s.Threads, v)
	}
	panic("unknown chart family " + family)
}
