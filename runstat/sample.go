// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runstat computes statistics over repeated benchmark
// measurements of the categorization engine.
//
// Measurements that failed to parse are carried as NaN in the input
// tables. Every function in this package ignores them.
package runstat

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one section.
type Sample struct {
	// Values are the measured values with NaNs removed, in
	// ascending order.
	Values []float64

	// Dropped is the number of NaN values removed from the input.
	Dropped int
}

// NewSample constructs a Sample from a set of measurements. It does
// not modify values.
func NewSample(values []float64) *Sample {
	s := &Sample{Values: make([]float64, 0, len(values))}
	for _, v := range values {
		if math.IsNaN(v) {
			s.Dropped++
			continue
		}
		s.Values = append(s.Values, v)
	}
	sort.Float64s(s.Values)
	return s
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// N returns the number of non-NaN values in s.
func (s *Sample) N() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return stats.Mean(s.Values)
}

// StdDev returns the sample standard deviation of s (with N-1 in the
// denominator). It is NaN if s has fewer than two values.
func (s *Sample) StdDev() float64 {
	if len(s.Values) < 2 {
		return math.NaN()
	}
	return s.sample().StdDev()
}

// PopStdDev returns the population standard deviation of s (with N
// in the denominator). This is the maximum likelihood estimate of σ
// for a normal fit.
func (s *Sample) PopStdDev() float64 {
	n := len(s.Values)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return 0
	}
	sd := s.sample().StdDev()
	return sd * math.Sqrt(float64(n-1)/float64(n))
}

// Bounds returns the smallest and largest values in s. Both are NaN
// if s is empty.
func (s *Sample) Bounds() (min, max float64) {
	if len(s.Values) == 0 {
		return math.NaN(), math.NaN()
	}
	return s.Values[0], s.Values[len(s.Values)-1]
}

// Quantile returns the q'th quantile of s.
func (s *Sample) Quantile(q float64) float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.sample().Quantile(q)
}

// Precision returns 1 - σ/μ, a measure of run-to-run consistency in
// which 1 means every run measured the same value. It is NaN if s
// has fewer than two values or a zero mean.
func (s *Sample) Precision() float64 {
	m := s.Mean()
	if len(s.Values) < 2 || m == 0 {
		return math.NaN()
	}
	return 1 - s.StdDev()/m
}

// Summary returns the summary statistics of s.
func (s *Sample) Summary() Summary {
	min, max := s.Bounds()
	return Summary{
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    min,
		Max:    max,
		N:      s.N(),
	}
}

// A Summary summarizes a Sample.
type Summary struct {
	Mean     float64
	StdDev   float64
	Min, Max float64
	N        int
}

// PctRangeString returns the largest distance from the mean to
// either bound as a percentage of the mean.
func (s Summary) PctRangeString() string {
	if s.N == 0 || math.IsNaN(s.Mean) {
		return "?"
	}
	if math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
		return "∞"
	}

	// If the signs of the bounds differ from the mean, we can't
	// render it as a percent.
	var csign = mathx.Sign(s.Mean)
	if csign != mathx.Sign(s.Min) || csign != mathx.Sign(s.Max) {
		return "?"
	}
	if s.Mean == 0 {
		return "0%"
	}

	v := math.Max(s.Max/s.Mean-1, 1-s.Min/s.Mean)
	return fmt.Sprintf("%.0f%%", 100*v)
}

// A Comparison is the result of testing whether two samples come
// from the same distribution.
type Comparison struct {
	// P is the p-value of the null hypothesis that the two
	// samples have the same mean.
	P float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// Alpha is the threshold below which the null hypothesis is
	// rejected.
	Alpha float64

	// Warnings lists problems encountered by the test.
	Warnings []error
}

// DefaultAlpha is the significance level used by Compare.
const DefaultAlpha = 0.05

// Compare runs Welch's t-test on s1 and s2. If the test cannot be
// performed, the result reports no significant difference and
// carries the error as a warning.
func Compare(s1, s2 *Sample) Comparison {
	c := Comparison{P: 1, N1: s1.N(), N2: s2.N(), Alpha: DefaultAlpha}
	t, err := stats.TwoSampleWelchTTest(s1.sample(), s2.sample(), stats.LocationDiffers)
	if err != nil {
		c.Warnings = []error{err}
		return c
	}
	c.P = t.P
	return c
}

// Significant reports whether the comparison rejects the null
// hypothesis.
func (c Comparison) Significant() bool {
	return c.P <= c.Alpha
}

// String summarizes the comparison as "p=0.PPP n=N1+N2".
func (c Comparison) String() string {
	var s string
	if c.P != 1 || len(c.Warnings) == 0 {
		s = fmt.Sprintf("p=%0.3f ", c.P)
	}
	if c.N1 == c.N2 {
		return s + fmt.Sprintf("n=%d", c.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", c.N1, c.N2)
}

// FormatDelta formats the difference between the means of the two
// compared samples. It returns "~" if the difference is not
// significant.
func (c Comparison) FormatDelta(old, new float64) string {
	if !c.Significant() {
		return "~"
	}
	if old == new {
		return "0.00%"
	}
	if old == 0 || math.IsNaN(old) || math.IsNaN(new) {
		return "?"
	}
	pct := ((new / old) - 1.0) * 100.0
	return fmt.Sprintf("%+.2f%%", pct)
}
