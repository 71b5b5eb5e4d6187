// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tfidfstat summarizes processed benchmark results of the TF-IDF
// categorization engine.
//
// Usage:
//
//	tfidfstat [flags] old.csv [new.csv] [more.csv ...]
//
// Each input file is a processed-data CSV, in either the wide form
// written by the harness (one column per section) or the long
// Section,Time form. Inputs may be given as label=path to name a
// column. With no inputs, tfidfstat compares the sequential and
// parallel files of the single-comparison run under
// tests/test-output/processed-data-results.
//
// For each section tfidfstat prints the mean and the largest
// deviation from the mean across repetitions. Accuracy is reported in
// a separate table as a percentage. Given exactly two inputs, it also
// prints the change from the first to the second and the p-value of
// Welch's t-test on the two samples; a "~" means the change is not
// significant at α=0.05.
//
// With -db, inputs name archived runs instead of files, using the
// processed-data naming convention (for example
// parallel-4-1-processed.csv); every run archived under that
// configuration is combined into one column.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/report"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/db"
	_ "github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/db/sqlite3"
)

func main() {
	if err := tfidfstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "tfidfstat: %s\n", err)
		os.Exit(1)
	}
}

func tfidfstat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("tfidfstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: tfidfstat [flags] old.csv [new.csv] [more.csv ...]\n")
		flags.PrintDefaults()
	}
	flagFormat := flags.String("format", "text", "print results in `format`: text, csv, or html")
	flagSort := flags.String("sort", "none", "sort rows by `order`: [-]name, [-]delta, [-]speedup, or none")
	flagDB := flags.String("db", "", "read runs from the archive at `driver:dsn` instead of files")
	if err := flags.Parse(args); err != nil {
		return err
	}

	sortFunc, err := report.ParseSort(*flagSort)
	if err != nil {
		return err
	}
	var format func(io.Writer, []*report.Table) error
	switch *flagFormat {
	case "text":
		format = func(w io.Writer, tables []*report.Table) error {
			var buf bytes.Buffer
			report.FormatText(&buf, tables)
			_, err := w.Write(buf.Bytes())
			return err
		}
	case "csv":
		format = report.FormatCSV
	case "html":
		format = formatHTML
	default:
		return fmt.Errorf("unknown -format %q", *flagFormat)
	}

	paths := flags.Args()
	if len(paths) == 0 {
		l := runfmt.Layout{Dir: runfmt.DefaultDataDir}
		paths = []string{"seq=" + l.Sequential(0), "par=" + l.Parallel(2, 0)}
	}

	c := new(report.Collection)
	if *flagDB != "" {
		err = loadDB(c, wErr, *flagDB, paths)
	} else {
		err = loadFiles(c, wErr, paths)
	}
	if err != nil {
		return err
	}

	tables := c.Tables()
	if sortFunc != nil {
		for _, t := range tables {
			report.SortTable(t, sortFunc)
		}
	}
	return format(w, tables)
}

func loadFiles(c *report.Collection, wErr io.Writer, paths []string) error {
	files := runfmt.Files{Paths: paths, AllowLabels: true}
	for files.Scan() {
		t := files.Table()
		if t.Len() == 0 {
			fmt.Fprintf(wErr, "%s: no measurements\n", files.Label())
			continue
		}
		c.AddTable(files.Label(), t)
	}
	return files.Err()
}

func loadDB(c *report.Collection, wErr io.Writer, spec string, names []string) error {
	driver, dsn, ok := strings.Cut(spec, ":")
	if !ok {
		return fmt.Errorf("bad -db %q: want driver:dsn", spec)
	}
	d, err := db.OpenSQL(driver, dsn)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	for _, name := range names {
		label := name
		if i := strings.Index(name, "="); i >= 0 {
			label, name = name[:i], name[i+1:]
		}
		info, ok := runfmt.ParseName(name)
		if !ok {
			return fmt.Errorf("%s: not a processed-data file name", name)
		}
		t, err := d.LoadTable(ctx, info.Mode, info.Threads, info.Dataset)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if t.Len() == 0 {
			fmt.Fprintf(wErr, "%s: no archived runs\n", label)
			continue
		}
		c.AddTable(label, t)
	}
	return nil
}
