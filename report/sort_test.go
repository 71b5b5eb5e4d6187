// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"
	"sort"
	"testing"
)

func sampleTable(t *testing.T) *Table {
	c := new(Collection)
	c.AddTable("seq", parse(t, "Vectorization,TF-IDF,Categories,Unknown Classification\n10,40,9,3\n12,44,9,3\n"))
	c.AddTable("par", parse(t, "Vectorization,TF-IDF,Categories,Unknown Classification\n5,10,3,4\n6,11,3,4\n"))
	return c.Tables()[0]
}

func sectionSortTest(t *testing.T, sampleTable *Table) {
	numRows := len(sampleTable.Rows)
	sections := make([]string, numRows)
	SortTable(sampleTable, ByName)
	for idx, row := range sampleTable.Rows {
		sections[idx] = row.Section
	}
	t.Run("NameSorted", func(t *testing.T) {
		if !sort.StringsAreSorted(sections) {
			t.Error("Table not sorted by section")
		}
	})
	SortTable(sampleTable, SortReverse(ByName))
	for idx, row := range sampleTable.Rows {
		sections[numRows-idx-1] = row.Section
	}
	t.Run("NameSortReversed", func(t *testing.T) {
		if !sort.StringsAreSorted(sections) {
			t.Error("Table not reverse sorted by section")
		}
	})
}

func speedupSortTest(t *testing.T, sampleTable *Table) {
	numRows := len(sampleTable.Rows)
	speedups := make([]float64, numRows)
	SortTable(sampleTable, BySpeedup)
	for idx, row := range sampleTable.Rows {
		speedups[idx] = row.Speedup
	}
	t.Run("SpeedupSorted", func(t *testing.T) {
		if !sort.Float64sAreSorted(speedups) {
			t.Errorf("Table not sorted by speedup: %v", speedups)
		}
	})
	SortTable(sampleTable, SortReverse(BySpeedup))
	for idx, row := range sampleTable.Rows {
		speedups[numRows-idx-1] = row.Speedup
	}
	t.Run("SpeedupSortReversed", func(t *testing.T) {
		if !sort.Float64sAreSorted(speedups) {
			t.Errorf("Table not reverse sorted by speedup: %v", speedups)
		}
	})
}

func TestSort(t *testing.T) {
	sectionSortTest(t, sampleTable(t))
	speedupSortTest(t, sampleTable(t))
}

func TestBySpeedupNaN(t *testing.T) {
	tab := &Table{Rows: []*Row{{Section: "a", Speedup: 2}, {Section: "b", Speedup: math.NaN()}, {Section: "c", Speedup: 1}}}
	SortTable(tab, BySpeedup)
	var got string
	for _, row := range tab.Rows {
		got += row.Section
	}
	if got != "bca" {
		t.Errorf("sorted order = %s, want bca", got)
	}
}

func TestParseSort(t *testing.T) {
	for _, name := range []string{"", "none", "name", "-name", "delta", "-delta", "speedup", "-speedup"} {
		f, err := ParseSort(name)
		if err != nil {
			t.Errorf("ParseSort(%q): %v", name, err)
		}
		if (f == nil) != (name == "" || name == "none") {
			t.Errorf("ParseSort(%q) returned nil = %v", name, f == nil)
		}
	}
	if _, err := ParseSort("bogus"); err == nil {
		t.Error("ParseSort(bogus) succeeded")
	}
}
