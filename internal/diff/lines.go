// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// NoLine stands in for a line past the end of the shorter input.
const NoLine = "[No Line]"

// A Difference is a line at which two inputs disagree.
type Difference struct {
	Line int    // 1-based line number
	A, B string // the line in each input, with surrounding space removed
}

// Lines compares a and b line by line, ignoring leading and trailing
// white space on each line, and returns the lines that differ.
// Lines are matched by position only; an inserted line shifts every
// following line.
func Lines(a, b []string) []Difference {
	var diffs []Difference
	for i := 0; i < max(len(a), len(b)); i++ {
		la, lb := at(a, i), at(b, i)
		if la != lb {
			diffs = append(diffs, Difference{i + 1, la, lb})
		}
	}
	return diffs
}

func at(lines []string, i int) string {
	if i < len(lines) {
		return strings.TrimSpace(lines[i])
	}
	return NoLine
}

// ReadLines returns the lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(nil, 16<<20)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}

// Files compares the files at path1 and path2 with Lines.
func Files(path1, path2 string) ([]Difference, error) {
	a, err := readFile(path1)
	if err != nil {
		return nil, err
	}
	b, err := readFile(path2)
	if err != nil {
		return nil, err
	}
	return Lines(a, b), nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// WriteReport writes diffs to w as a report comparing the inputs
// named name1 and name2.
func WriteReport(w io.Writer, name1, name2 string, diffs []Difference) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Differences between %s and %s:\n", name1, name2)
	for _, d := range diffs {
		fmt.Fprintf(bw, "Line %d:\nFile 1: %s\nFile 2: %s\n", d.Line, d.A, d.B)
	}
	return bw.Flush()
}
