// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A SortFunc abstracts the sorting interface to compare two rows of a Table
type SortFunc func(*Table, int, int) bool

// ByName sorts tables by section name.
func ByName(t *Table, i, j int) bool {
	return t.Rows[i].Section < t.Rows[j].Section
}

// ByDelta sorts tables by the Delta column, taking into account
// whether a given delta is "good" or "bad".
func ByDelta(t *Table, i, j int) bool {
	return math.Abs(t.Rows[i].PctDelta)*float64(t.Rows[i].Change) <
		math.Abs(t.Rows[j].PctDelta)*float64(t.Rows[j].Change)
}

// BySpeedup sorts tables by speedup. Rows without a speedup sort
// first.
func BySpeedup(t *Table, i, j int) bool {
	a, b := t.Rows[i].Speedup, t.Rows[j].Speedup
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && !math.IsNaN(b)
	}
	return a < b
}

// SortReverse returns a SortFunc that is the reverse of the input SortFunc
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(t *Table, i, j int) bool { return sortFunc(t, j, i) }
}

// SortTable sorts a Table t (in place) by the given SortFunc
func SortTable(t *Table, sortFunc SortFunc) {
	sort.SliceStable(t.Rows, func(i, j int) bool { return sortFunc(t, i, j) })
}

// ParseSort parses a sort order name: "name", "delta" or "speedup",
// optionally prefixed with "-" to reverse it. The empty string means
// input order and yields a nil SortFunc.
func ParseSort(s string) (SortFunc, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	reverse := strings.HasPrefix(s, "-")
	var f SortFunc
	switch strings.TrimPrefix(s, "-") {
	case "name":
		f = ByName
	case "delta":
		f = ByDelta
	case "speedup":
		f = BySpeedup
	default:
		return nil, fmt.Errorf("unknown sort order %q", s)
	}
	if reverse {
		f = SortReverse(f)
	}
	return f, nil
}
