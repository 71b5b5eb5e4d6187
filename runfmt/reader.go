// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A SyntaxError represents a syntax error on a particular line of a
// processed-data file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads a processed-data CSV file in either the wide or the
// long layout.
type Reader struct {
	csv      *csv.Reader
	fileName string
}

// NewReader constructs a reader to parse processed-data CSV from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{cr, fileName}
}

// Read consumes the whole input and returns it as a long table with
// columns ColRun (int), ColSection (string) and ColValue (float64).
//
// Cells that do not parse as numbers are recorded as NaN. An input
// consisting only of a header yields a table with no rows.
func (r *Reader) Read() (*table.Table, error) {
	header, err := r.csv.Read()
	if err == io.EOF {
		return nil, &SyntaxError{r.fileName, 1, "missing header"}
	} else if err != nil {
		return nil, r.wrap(err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if isLongHeader(header) {
		return r.readLong()
	}
	return r.readWide(header)
}

func isLongHeader(h []string) bool {
	if len(h) != 2 || h[0] != ColSection {
		return false
	}
	switch h[1] {
	case "Time (ms)", "Time", ColValue:
		return true
	}
	return false
}

func (r *Reader) readLong() (*table.Table, error) {
	var runs []int
	var secs []string
	var vals []float64
	count := make(map[string]int)
	for {
		rec, err := r.csv.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, r.wrap(err)
		}
		if len(rec) != 2 {
			line, _ := r.csv.FieldPos(0)
			return nil, &SyntaxError{r.fileName, line, fmt.Sprintf("expected 2 fields, got %d", len(rec))}
		}
		sec := strings.TrimSpace(rec[0])
		runs = append(runs, count[sec])
		count[sec]++
		secs = append(secs, sec)
		vals = append(vals, ParseValue(rec[1]))
	}

	var b table.Builder
	b.Add(ColRun, runs).Add(ColSection, secs).Add(ColValue, vals)
	return fill(b.Done()), nil
}

func (r *Reader) readWide(header []string) (*table.Table, error) {
	seen := make(map[string]bool)
	for _, h := range header {
		if h == "" || h == ColRun {
			return nil, &SyntaxError{r.fileName, 1, fmt.Sprintf("bad column name %q", h)}
		}
		if seen[h] {
			return nil, &SyntaxError{r.fileName, 1, fmt.Sprintf("duplicate column %q", h)}
		}
		seen[h] = true
	}

	cols := make([][]float64, len(header))
	for i := range cols {
		cols[i] = []float64{}
	}
	runs := []int{}
	for {
		rec, err := r.csv.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, r.wrap(err)
		}
		if len(rec) != len(header) {
			line, _ := r.csv.FieldPos(0)
			return nil, &SyntaxError{r.fileName, line, fmt.Sprintf("expected %d fields, got %d", len(header), len(rec))}
		}
		runs = append(runs, len(runs))
		for i, cell := range rec {
			cols[i] = append(cols[i], ParseValue(cell))
		}
	}

	var b table.Builder
	b.Add(ColRun, runs)
	for i, h := range header {
		b.Add(h, cols[i])
	}
	long := table.Unpivot(b.Done(), ColSection, ColValue, header...)
	return fill(table.Flatten(long)), nil
}

// fill gives t the three long columns even when it has no rows.
func fill(t *table.Table) *table.Table {
	if t.Columns() != nil {
		return t
	}
	var b table.Builder
	b.Add(ColRun, []int{}).Add(ColSection, []string{}).Add(ColValue, []float64{})
	return b.Done()
}

func (r *Reader) wrap(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &SyntaxError{r.fileName, perr.Line, perr.Err.Error()}
	}
	return fmt.Errorf("%s: %w", r.fileName, err)
}

// ParseValue parses a processed-data cell. Surrounding space and a
// trailing "ms" unit are ignored. Cells that are not numbers yield
// NaN.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "ms"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ReadFile reads the processed-data file at path.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewReader(f, path).Read()
}
