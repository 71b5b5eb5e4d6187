// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// FormatText appends a fixed-width text formatting of the tables to buf.
func FormatText(buf *bytes.Buffer, tables []*Table) {
	var textTables [][]*textRow
	for _, t := range tables {
		textTables = append(textTables, toText(t))
	}

	var max []int
	for _, table := range textTables {
		for _, row := range table {
			for len(max) < len(row.cols) {
				max = append(max, 0)
			}
			for i, s := range row.cols {
				n := utf8.RuneCountInString(s)
				if max[i] < n {
					max[i] = n
				}
			}
		}
	}

	for i, table := range textTables {
		if i > 0 {
			fmt.Fprintf(buf, "\n")
		}

		// headings
		row := table[0]
		for i, s := range row.cols {
			switch i {
			case 0:
				fmt.Fprintf(buf, "%-*s", max[i], s)
			case len(row.cols) - 1:
				fmt.Fprintf(buf, "  %s", s)
			default:
				fmt.Fprintf(buf, "  %-*s", max[i], s)
			}
		}
		fmt.Fprintf(buf, "\n")

		for _, row := range table[1:] {
			for i, s := range row.cols {
				switch {
				case i == 0:
					fmt.Fprintf(buf, "%-*s", max[i], s)
				case i == len(row.cols)-1 && len(s) > 0 && s[0] == '(':
					// Left-align p value.
					fmt.Fprintf(buf, "  %s", s)
				default:
					fmt.Fprintf(buf, "  %*s", max[i], s)
				}
			}
			fmt.Fprintf(buf, "\n")
		}
	}
}

// A textRow is a row of printed text columns.
type textRow struct {
	cols []string
}

func newTextRow(cols ...string) *textRow {
	return &textRow{cols: cols}
}

func (r *textRow) trim() {
	for len(r.cols) > 0 && r.cols[len(r.cols)-1] == "" {
		r.cols = r.cols[:len(r.cols)-1]
	}
}

// header returns the column headings of t.
func header(t *Table) []string {
	switch len(t.Configs) {
	case 1:
		return []string{"section", t.Metric}
	case 2:
		return []string{"section", "old " + t.Metric, "new " + t.Metric, "delta"}
	}
	return append([]string{"section \\ " + t.Metric}, t.Configs...)
}

// toText converts the Table to a textual grid of cells,
// which can then be printed in fixed-width output.
func toText(t *Table) []*textRow {
	textRows := []*textRow{newTextRow(header(t)...)}
	for _, row := range t.Rows {
		text := newTextRow(row.Section)
		text.cols = append(text.cols, row.Cells()...)
		if t.OldNewDelta {
			delta := row.Delta
			if delta == "~" {
				delta = "~   "
			}
			text.cols = append(text.cols, delta, row.Note)
		}
		textRows = append(textRows, text)
	}
	for _, r := range textRows {
		r.trim()
	}
	return textRows
}
