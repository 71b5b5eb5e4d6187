// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Linediff compares two text files line by line and writes a report
// of the lines that differ.
//
// Usage:
//
//	linediff [file1 file2 [report]]
//
// Lines are compared by position with surrounding white space
// ignored. A line present in only one file is reported against
// "[No Line]". With no arguments, linediff compares the per-document
// output of the sequential and parallel engines under
// tests/test-output/lengthy.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/internal/diff"
)

const lengthyDir = "tests/test-output/lengthy"

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: linediff [file1 file2 [report]]\n")
	flag.PrintDefaults()
	exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if err := linediff(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func linediff(w io.Writer, args []string) error {
	file1 := filepath.Join(lengthyDir, "document-info.txt")
	file2 := filepath.Join(lengthyDir, "document-info-par.txt")
	report := filepath.Join(lengthyDir, "diffy")
	switch len(args) {
	case 0:
	case 2:
		file1, file2 = args[0], args[1]
		report = ""
	case 3:
		file1, file2, report = args[0], args[1], args[2]
	default:
		usage()
		return nil
	}

	diffs, err := diff.Files(file1, file2)
	if err != nil {
		return err
	}
	if report == "" {
		return diff.WriteReport(w, file1, file2, diffs)
	}
	var buf bytes.Buffer
	if err := diff.WriteReport(&buf, file1, file2, diffs); err != nil {
		return err
	}
	if err := os.WriteFile(report, buf.Bytes(), 0666); err != nil {
		return err
	}
	fmt.Fprintf(w, "Differences written to %s\n", report)
	return nil
}
