// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runfmt reads and writes the processed-data CSV files
// produced by the TF-IDF categorization benchmarks.
//
// A processed-data file records one or more benchmark runs. Each run
// has a duration in milliseconds for each phase of the engine (see
// Sections) and usually an Accuracy value. Two layouts exist in the
// wild:
//
//	Vectorization,TF-IDF,Categories,Unknown Classification,Accuracy
//	12.5,40.1,3.2,7.7,0.93
//	...
//
// and the long layout written by the engine itself:
//
//	Section,Time (ms)
//	Vectorization,12.5
//	...
//
// Both are read into the same long table with columns Run, Section
// and Value. Functions throughout this module operate on that table.
package runfmt

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Phase and metric names as they appear in processed-data headers.
const (
	Vectorization = "Vectorization"
	TFIDF         = "TF-IDF"
	Categories    = "Categories"
	Unknown       = "Unknown Classification"
	Accuracy      = "Accuracy"
)

// Sections lists the timed phases of the engine in execution order.
var Sections = []string{Vectorization, TFIDF, Categories, Unknown}

// Column names of the long table returned by Reader.
const (
	ColRun     = "Run"
	ColSection = "Section"
	ColValue   = "Value"
)

// ShortName returns the abbreviated section name used on chart axes.
func ShortName(section string) string {
	if section == Unknown {
		return "Unknown Class."
	}
	return section
}

// Values returns the values of section in t in run order. It returns
// nil if t has no rows for section.
func Values(t *table.Table, section string) []float64 {
	if t.Len() == 0 {
		return nil
	}
	secs := t.MustColumn(ColSection).([]string)
	vals := t.MustColumn(ColValue).([]float64)
	var out []float64
	for i, s := range secs {
		if s == section {
			out = append(out, vals[i])
		}
	}
	return out
}

// SectionNames returns the distinct sections of t in order of first
// appearance.
func SectionNames(t *table.Table) []string {
	if t.Len() == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, s := range t.MustColumn(ColSection).([]string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// A MissingError reports that a required section is absent from a
// processed-data file.
type MissingError struct {
	FileName string
	Section  string
}

func (e *MissingError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("missing column %q", e.Section)
	}
	return fmt.Sprintf("%s: missing column %q", e.FileName, e.Section)
}

// Require returns a *MissingError for the first of sections that has
// no rows in t. fileName is used in the error only.
func Require(t *table.Table, fileName string, sections ...string) error {
	have := make(map[string]bool)
	for _, s := range SectionNames(t) {
		have[s] = true
	}
	for _, s := range sections {
		if !have[s] {
			return &MissingError{fileName, s}
		}
	}
	return nil
}

// Timings returns t without the Accuracy rows.
func Timings(t *table.Table) *table.Table {
	return filterSection(t, func(s string) bool { return s != Accuracy })
}

// Only returns the rows of t for section.
func Only(t *table.Table, section string) *table.Table {
	if t.Len() == 0 {
		return t
	}
	return table.Flatten(table.FilterEq(t, ColSection, section))
}

func filterSection(t *table.Table, keep func(string) bool) *table.Table {
	if t.Len() == 0 {
		return t
	}
	return table.Flatten(table.Filter(t, keep, ColSection))
}
