// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report summarizes processed-data files as comparison
// tables, in the manner of benchstat.
//
// Each input file is a configuration. A Collection gathers the
// measurements of every section in every configuration; Tables turns
// them into a timing table and an accuracy table with one row per
// section. When exactly two configurations are given, each row also
// compares the first (old) to the second (new).
package report

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runstat"
)

// A Collection is a collection of processed-data measurements.
type Collection struct {
	// Configs and Sections give the set of configs and sections
	// from the keys in Metrics in the order they were read.
	Configs, Sections []string

	// Metrics holds the accumulated metrics for each key.
	Metrics map[Key]*Metrics
}

// A Key identifies one section in one configuration.
type Key struct {
	Config, Section string
}

// A Metrics holds the measurements of one section in one
// configuration.
type Metrics struct {
	Unit    string    // "ms" for timings, "" for accuracy fractions
	Values  []float64 // measured values, possibly NaN
	Sample  *runstat.Sample
	Summary runstat.Summary
}

func (m *Metrics) computeStats() {
	m.Sample = runstat.NewSample(m.Values)
	m.Summary = m.Sample.Summary()
}

// FormatMean formats the mean of m using scaler.
func (m *Metrics) FormatMean(scaler Scaler) string {
	if scaler != nil {
		return scaler(m.Summary.Mean)
	}
	return fmt.Sprint(m.Summary.Mean)
}

// Format returns a textual formatting of "Mean ±Range" using scaler.
func (m *Metrics) Format(scaler Scaler) string {
	if m == nil {
		return ""
	}
	mean := m.FormatMean(scaler)
	if m.Summary.N < 2 {
		return mean + "     "
	}
	return fmt.Sprintf("%s ±%3s", mean, m.Summary.PctRangeString())
}

func (c *Collection) addMetrics(key Key) *Metrics {
	if c.Metrics == nil {
		c.Metrics = make(map[Key]*Metrics)
	}
	if m, ok := c.Metrics[key]; ok {
		return m
	}
	addString := func(strings *[]string, add string) {
		for _, s := range *strings {
			if s == add {
				return
			}
		}
		*strings = append(*strings, add)
	}
	addString(&c.Configs, key.Config)
	addString(&c.Sections, key.Section)
	m := &Metrics{}
	if key.Section != runfmt.Accuracy {
		m.Unit = "ms"
	}
	c.Metrics[key] = m
	return m
}

// AddTable adds the measurements in the long table t to the named
// configuration. Accuracy values are scaled to fractions.
func (c *Collection) AddTable(config string, t *table.Table) {
	for _, sec := range runfmt.SectionNames(t) {
		vals := runfmt.Values(t, sec)
		if sec == runfmt.Accuracy {
			vals = runstat.Fraction(vals)
		}
		m := c.addMetrics(Key{config, sec})
		m.Values = append(m.Values, vals...)
	}
}

// A Table is a table for display in the benchstat output format.
type Table struct {
	Metric      string
	OldNewDelta bool // is this an old-new-delta table?
	Configs     []string
	Rows        []*Row
}

// A Row is a table row for display in the benchstat output format.
type Row struct {
	Section  string     // section name
	Scaler   Scaler     // formatter for stats means
	Metrics  []*Metrics // columns of statistics, nil where a config lacks the section
	PctDelta float64    // unformatted percent change
	Delta    string     // formatted percent change
	Speedup  float64    // old mean / new mean, timing tables only
	Note     string     // additional information
	Change   int        // +1 better, -1 worse, 0 unchanged
}

// Cells returns the formatted statistics of r, one per config. A
// config without the section yields an empty cell.
func (r *Row) Cells() []string {
	cells := make([]string, len(r.Metrics))
	for i, m := range r.Metrics {
		cells[i] = m.Format(r.Scaler)
	}
	return cells
}

// Tables returns the timing and accuracy tables of c. A table with
// no rows is omitted.
func (c *Collection) Tables() []*Table {
	var tables []*Table
	for _, kind := range []struct {
		metric   string
		accuracy bool
	}{{"time/op", false}, {"accuracy", true}} {
		t := &Table{Metric: kind.metric, Configs: c.Configs, OldNewDelta: len(c.Configs) == 2}
		for _, sec := range c.Sections {
			if (sec == runfmt.Accuracy) != kind.accuracy {
				continue
			}
			if row := c.row(sec, kind.accuracy); row != nil {
				t.Rows = append(t.Rows, row)
			}
		}
		if len(t.Rows) > 0 {
			tables = append(tables, t)
		}
	}
	return tables
}

func (c *Collection) row(section string, accuracy bool) *Row {
	row := &Row{Section: section, Speedup: math.NaN()}
	var any *Metrics
	for _, config := range c.Configs {
		m := c.Metrics[Key{config, section}]
		if m != nil {
			m.computeStats()
			if any == nil {
				any = m
			}
		}
		row.Metrics = append(row.Metrics, m)
	}
	if any == nil {
		return nil
	}
	row.Scaler = NewScaler(any.Summary.Mean, any.Unit)

	if len(c.Configs) != 2 {
		return row
	}
	old, new := row.Metrics[0], row.Metrics[1]
	if old == nil || new == nil {
		row.Delta = "?"
		return row
	}
	cmp := runstat.Compare(old.Sample, new.Sample)
	row.Delta = cmp.FormatDelta(old.Summary.Mean, new.Summary.Mean)
	row.Note = "(" + cmp.String() + ")"
	if row.Delta != "~" && row.Delta != "?" {
		row.PctDelta = (new.Summary.Mean/old.Summary.Mean - 1) * 100
	}
	if !accuracy {
		row.Speedup = runstat.Speedup(old.Summary.Mean, new.Summary.Mean)
	}
	if cmp.Significant() {
		better := new.Summary.Mean < old.Summary.Mean
		if accuracy {
			better = !better
		}
		row.Change = -1
		if better {
			row.Change = 1
		}
	}
	return row
}
