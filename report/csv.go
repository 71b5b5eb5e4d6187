// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// FormatCSV writes a CSV formatting of the tables to w. Tables are
// separated by an empty record. Unlike FormatText, means are written
// unscaled with a separate ± column so the output can be loaded back
// into a spreadsheet.
func FormatCSV(w io.Writer, tables []*Table) error {
	cw := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			cw.Write([]string{})
		}
		hdr := []string{header(t)[0]}
		for _, c := range t.Configs {
			hdr = append(hdr, c, "±")
		}
		if t.OldNewDelta {
			hdr = append(hdr, "delta", "speedup", "note")
		}
		cw.Write(hdr)
		for _, row := range t.Rows {
			rec := []string{row.Section}
			for _, m := range row.Metrics {
				if m == nil {
					rec = append(rec, "", "")
					continue
				}
				rec = append(rec, strconv.FormatFloat(m.Summary.Mean, 'f', -1, 64), m.Summary.PctRangeString())
			}
			if t.OldNewDelta {
				speedup := ""
				if !math.IsNaN(row.Speedup) {
					speedup = strconv.FormatFloat(row.Speedup, 'f', 3, 64)
				}
				rec = append(rec, row.Delta, speedup, row.Note)
			}
			cw.Write(rec)
		}
	}
	cw.Flush()
	return cw.Error()
}
