// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Resultcsv converts the plain-text results written by the TF-IDF
// engine into processed-data CSVs.
//
// Usage:
//
//	resultcsv [-out dir] [-wide] [results.txt ...]
//
// Each line of a results file has the form "Section: time". The
// output for foo-results.txt is -out/foo-processed.csv, in the long
// Section,Time layout, or with -wide in the one-column-per-section
// layout with one row per repetition. With no arguments, resultcsv
// converts the sequential and parallel results of the
// single-comparison run.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
)

func main() {
	log.SetPrefix("resultcsv: ")
	log.SetFlags(0)
	if err := resultcsv(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func resultcsv(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("resultcsv", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: resultcsv [flags] [results.txt ...]\n")
		flags.PrintDefaults()
	}
	flagOut := flags.String("out", runfmt.DefaultDataDir, "write CSVs to `dir`")
	flagWide := flags.Bool("wide", false, "write one column per section instead of Section,Time rows")
	if err := flags.Parse(args); err != nil {
		return err
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{
			filepath.Join(runfmt.DefaultResultsDir, "sequential-results.txt"),
			filepath.Join(runfmt.DefaultResultsDir, "parallel-results.txt"),
		}
	}
	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		return err
	}
	for _, in := range inputs {
		out := filepath.Join(*flagOut, runfmt.ProcessedName(in))
		if err := convert(in, out, *flagWide); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s -> %s\n", in, out)
	}
	return nil
}

func convert(in, out string, wide bool) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	st, err := runfmt.ParseResults(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	var buf bytes.Buffer
	if wide {
		header, rows := widen(st)
		err = runfmt.WriteWide(&buf, header, rows)
	} else {
		err = runfmt.WriteLong(&buf, st)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0666)
}

// widen arranges st into one column per section, in order of first
// appearance. The n'th occurrence of a section goes in row n.
func widen(st []runfmt.SectionTime) (header []string, rows [][]float64) {
	col := make(map[string]int)
	count := make(map[string]int)
	for _, x := range st {
		sec := strings.TrimSpace(x.Section)
		if sec == "" {
			continue
		}
		i, ok := col[sec]
		if !ok {
			i = len(header)
			col[sec] = i
			header = append(header, sec)
		}
		r := count[sec]
		count[sec]++
		for len(rows) <= r {
			rows = append(rows, nil)
		}
		for len(rows[r]) <= i {
			rows[r] = append(rows[r], math.NaN())
		}
		rows[r][i] = runfmt.ParseValue(x.Time)
	}
	return header, rows
}
