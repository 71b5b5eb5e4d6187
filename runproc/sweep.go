// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runstat"
)

// A Sweep holds the processed-data tables of one dataset across a
// range of thread counts. Threads[0] is the baseline for speedups.
type Sweep struct {
	Dataset int
	Threads []int
	Paths   []string
	Tables  []*table.Table
}

// LoadSweep reads the processed-data file of dataset for each thread
// count using the naming convention of l.
func LoadSweep(l runfmt.Layout, dataset int, threads []int) (*Sweep, error) {
	if len(threads) == 0 {
		return nil, fmt.Errorf("dataset %d: no thread counts", dataset)
	}
	s := &Sweep{Dataset: dataset, Threads: threads}
	for _, th := range threads {
		path := l.Processed(th, dataset)
		t, err := runfmt.ReadFile(path)
		if err != nil {
			return nil, err
		}
		s.Paths = append(s.Paths, path)
		s.Tables = append(s.Tables, t)
	}
	return s, nil
}

func (s *Sweep) require(sections ...string) error {
	for i, t := range s.Tables {
		if err := runfmt.Require(t, s.Paths[i], sections...); err != nil {
			return err
		}
	}
	return nil
}

// Means returns the mean of section at each thread count.
func (s *Sweep) Means(section string) ([]float64, error) {
	if err := s.require(section); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.Tables))
	for i, t := range s.Tables {
		out[i] = Mean(t, section)
	}
	return out, nil
}

// Speedups returns, for each thread count, the mean time of section
// at the baseline thread count divided by the mean time at that
// thread count.
func (s *Sweep) Speedups(section string) ([]float64, error) {
	means, err := s.Means(section)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(means))
	for i, m := range means {
		out[i] = runstat.Speedup(means[0], m)
	}
	return out, nil
}

// Samples returns the measurements of section at each thread count.
func (s *Sweep) Samples(section string) ([]*runstat.Sample, error) {
	if err := s.require(section); err != nil {
		return nil, err
	}
	out := make([]*runstat.Sample, len(s.Tables))
	for i, t := range s.Tables {
		vals := runfmt.Values(t, section)
		if section == runfmt.Accuracy {
			vals = runstat.Fraction(vals)
		}
		out[i] = runstat.NewSample(vals)
	}
	return out, nil
}

// Accuracy returns the accuracy samples at each thread count, scaled
// to fractions.
func (s *Sweep) Accuracy() ([]*runstat.Sample, error) {
	return s.Samples(runfmt.Accuracy)
}

// AccuracyMeans returns the mean accuracy at each thread count.
func (s *Sweep) AccuracyMeans() ([]float64, error) {
	samples, err := s.Accuracy()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = x.Mean()
	}
	return out, nil
}

// Precisions returns 1 - σ/μ of the accuracy at each thread count.
func (s *Sweep) Precisions() ([]float64, error) {
	samples, err := s.Accuracy()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = x.Precision()
	}
	return out, nil
}

// TotalMinutes returns, for each thread count, the sum of the mean
// times of every timed section, in minutes.
func (s *Sweep) TotalMinutes() ([]float64, error) {
	if err := s.require(runfmt.Sections...); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.Tables))
	for i, t := range s.Tables {
		var total float64
		for _, sec := range runfmt.Sections {
			total += Mean(t, sec)
		}
		out[i] = runstat.MinutesFromMillis(total)
	}
	return out, nil
}
