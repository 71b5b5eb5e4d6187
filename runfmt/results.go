// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
)

// A SectionTime is one line of an engine results.txt file.
type SectionTime struct {
	Section string
	Time    string
}

// ParseResults parses the plain-text results written by the engine,
// one "Section: value" pair per line. Each line is split at its first
// colon and a single space after the colon is dropped. A line with no
// colon yields a SectionTime with an empty Time.
func ParseResults(r io.Reader) ([]SectionTime, error) {
	var out []SectionTime
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		sec, val, ok := strings.Cut(line, ":")
		if !ok {
			out = append(out, SectionTime{Section: line})
			continue
		}
		out = append(out, SectionTime{sec, strings.TrimPrefix(val, " ")})
	}
	return out, s.Err()
}

// WriteLong writes st in the long "Section,Time" layout.
func WriteLong(w io.Writer, st []SectionTime) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{ColSection, "Time"})
	for _, x := range st {
		cw.Write([]string{x.Section, x.Time})
	}
	cw.Flush()
	return cw.Error()
}

// WriteWide writes rows in the wide layout under header. NaN values
// are written as empty cells.
func WriteWide(w io.Writer, header []string, rows [][]float64) error {
	cw := csv.NewWriter(w)
	cw.Write(header)
	rec := make([]string, len(header))
	for _, row := range rows {
		for i := range rec {
			rec[i] = ""
			if i < len(row) && !math.IsNaN(row[i]) {
				rec[i] = strconv.FormatFloat(row[i], 'g', -1, 64)
			}
		}
		cw.Write(rec)
	}
	cw.Flush()
	return cw.Error()
}
