// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"fmt"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Files reads processed-data tables from a sequence of input files.
//
// Each table is labeled with the file name it came from, except that
// duplicate names are disambiguated by appending "#N". If AllowLabels
// is true, entries in Paths may be of the form label=path, and the
// label part is used verbatim.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []input

	cur input
	tab *table.Table
	err error
}

type input struct {
	path      string
	label     string
	isStdin   bool
	isLabeled bool
}

func (f *Files) init() {
	f.inputs = []input{}

	pathCount := make(map[string]int)
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, input{"-", "-", true, false})
	}
	for _, path := range f.Paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}
		isStdin := f.AllowStdin && path == "-"
		f.inputs = append(f.inputs, input{path, label, isStdin, isLabeled})
	}

	pathI := make(map[string]int)
	for i := range f.inputs {
		inp := &f.inputs[i]
		if inp.isLabeled || pathCount[inp.path] <= 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
}

// Scan reads the next file in the sequence and reports whether a
// table was read. If Scan reaches the end of the sequence, or if an
// error occurs, it returns false and the caller should check Err.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		return false
	}
	f.cur, f.inputs = f.inputs[0], f.inputs[1:]

	if f.cur.isStdin {
		f.tab, f.err = NewReader(os.Stdin, "<stdin>").Read()
	} else {
		f.tab, f.err = ReadFile(f.cur.path)
	}
	return f.err == nil
}

// Table returns the table read by the most recent call to Scan.
func (f *Files) Table() *table.Table {
	return f.tab
}

// Label returns the label of the file read by the most recent call
// to Scan.
func (f *Files) Label() string {
	return f.cur.label
}

// Path returns the path of the file read by the most recent call to
// Scan.
func (f *Files) Path() string {
	return f.cur.path
}

// Err returns the first error encountered by Scan.
func (f *Files) Err() error {
	return f.err
}
