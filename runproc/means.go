// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runproc derives per-section aggregates, comparisons and
// thread sweeps from processed-data tables.
//
// All functions take and produce long tables as returned by
// runfmt.Reader.
package runproc

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runstat"
)

// Column names added by this package.
const (
	ColMean    = "Mean"
	ColSeq     = "Seq"
	ColPar     = "Par"
	ColRatio   = "Ratio"
	ColLogSeq  = "LogSeq"
	ColLogPar  = "LogPar"
	ColSpeedup = "Speedup"
)

// aggNaNMean is like ggstat.AggMean, but ignores NaN values, which
// stand for cells that failed to parse.
func aggNaNMean(col string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		means := make([]float64, 0, len(input.Tables()))
		for _, gid := range input.Tables() {
			xs := input.Table(gid).MustColumn(col).([]float64)
			means = append(means, runstat.NewSample(xs).Mean())
		}
		b.Add("mean "+col, means)
	}
}

// project returns a new table holding only cols of t, in that order.
func project(t *table.Table, cols ...string) *table.Table {
	var b table.Builder
	for _, col := range cols {
		b.Add(col, t.MustColumn(col))
	}
	return b.Done()
}

func emptyTable(strCol string, floatCols ...string) *table.Table {
	var b table.Builder
	b.Add(strCol, []string{})
	for _, col := range floatCols {
		b.Add(col, []float64{})
	}
	return b.Done()
}

// SectionMeans returns a table with one row per section of t, in
// order of first appearance, and columns Section and Mean. NaN values
// are ignored; a section with no numeric values has a NaN mean.
func SectionMeans(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return emptyTable(runfmt.ColSection, ColMean)
	}
	g := ggstat.Agg(runfmt.ColSection)(aggNaNMean(runfmt.ColValue)).F(t)
	g = table.Rename(g, "mean "+runfmt.ColValue, ColMean)
	return project(table.Flatten(g), runfmt.ColSection, ColMean)
}

// A SectionValue is one row of a per-section result.
type SectionValue struct {
	Section string
	Value   float64
}

// sectionValues extracts the Section and col columns of t.
func sectionValues(t *table.Table, col string) []SectionValue {
	if t.Len() == 0 {
		return nil
	}
	secs := t.MustColumn(runfmt.ColSection).([]string)
	vals := t.MustColumn(col).([]float64)
	out := make([]SectionValue, len(secs))
	for i := range out {
		out[i] = SectionValue{secs[i], vals[i]}
	}
	return out
}

// Means returns the per-section means of t as a slice.
func Means(t *table.Table) []SectionValue {
	return sectionValues(SectionMeans(t), ColMean)
}

// Mean returns the mean of section in t ignoring NaNs. It is NaN if
// t has no numeric values for section.
func Mean(t *table.Table, section string) float64 {
	return runstat.NewSample(runfmt.Values(t, section)).Mean()
}
