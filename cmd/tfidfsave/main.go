// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tfidfsave archives processed benchmark results and publishes
// rendered charts.
//
// Usage:
//
//	tfidfsave [flags] file...
//
// Each input file is a processed-data CSV. It is stored in the run
// archive given by -db as a new run. The run's mode, thread count and
// dataset are taken from the flags if given and otherwise from the
// file name (for example parallel-4-2-processed.csv).
//
// The archive is a SQL database named as driver:dsn. Supported
// drivers are sqlite3 and mysql; a mysql DSN may use the cloudsql
// network to reach a Cloud SQL instance, for example
//
//	-db 'mysql:root@cloudsql(project:region:instance)/tfidf'
//
// If -bucket is set, tfidfsave also uploads every chart in -graphs
// to that Google Cloud Storage bucket under -prefix, authenticating
// with the application default credentials.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/go-sql-driver/mysql"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/db"
	_ "github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/db/sqlite3"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/gcs"
)

func main() {
	log.SetPrefix("tfidfsave: ")
	log.SetFlags(0)
	if err := tfidfsave(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func tfidfsave(ctx context.Context, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("tfidfsave", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: tfidfsave [flags] file...\n")
		flags.PrintDefaults()
	}
	flagDB := flags.String("db", "sqlite3:tests/test-output/runs.db", "store runs in the archive at `driver:dsn`")
	flagMode := flags.String("mode", "", "execution `mode` of every file: sequential or parallel (default from file name)")
	flagThreads := flags.Int("threads", 0, "thread `count` of every file (default from file name)")
	flagDataset := flags.Int("dataset", -1, "dataset `number` of every file (default from file name)")
	flagBucket := flags.String("bucket", "", "upload charts to Cloud Storage `bucket`")
	flagPrefix := flags.String("prefix", time.Now().UTC().Format("2006-01-02"), "object name `prefix` for uploaded charts")
	flagGraphs := flags.String("graphs", runfmt.DefaultGraphDir, "upload charts from `dir`")
	flagV := flags.Bool("v", false, "print verbose log messages")
	if err := flags.Parse(args); err != nil {
		return err
	}
	files := flags.Args()
	if len(files) == 0 && *flagBucket == "" {
		flags.Usage()
		return flag.ErrHelp
	}
	if *flagMode != "" && *flagMode != "sequential" && *flagMode != "parallel" {
		return fmt.Errorf("bad -mode %q", *flagMode)
	}

	// Resolve every run before touching the archive.
	infos := make([]db.RunInfo, len(files))
	for i, file := range files {
		fi, _ := runfmt.ParseName(file)
		info := db.RunInfo{Mode: fi.Mode, Threads: fi.Threads, Dataset: fi.Dataset, Source: filepath.Base(file)}
		if *flagMode != "" {
			info.Mode = *flagMode
		}
		if *flagThreads > 0 {
			info.Threads = *flagThreads
		}
		if *flagDataset >= 0 {
			info.Dataset = *flagDataset
		}
		if info.Mode == "" {
			return fmt.Errorf("%s: cannot infer mode from file name; use -mode", file)
		}
		infos[i] = info
	}

	if len(files) > 0 {
		if err := archive(ctx, w, wErr, *flagDB, files, infos, *flagV); err != nil {
			return err
		}
	}
	if *flagBucket != "" {
		return upload(ctx, w, *flagBucket, *flagPrefix, *flagGraphs, *flagV)
	}
	return nil
}

func archive(ctx context.Context, w, wErr io.Writer, spec string, files []string, infos []db.RunInfo, verbose bool) error {
	driver, dsn, ok := strings.Cut(spec, ":")
	if !ok {
		return fmt.Errorf("bad -db %q: want driver:dsn", spec)
	}
	if driver == "sqlite3" {
		if dir := filepath.Dir(dsn); dir != "." && !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return err
			}
		}
	}
	d, err := db.OpenSQL(driver, dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", driver, err)
	}
	defer d.Close()

	archived := 0
	for i, file := range files {
		t, err := runfmt.ReadFile(file)
		if err != nil {
			return err
		}
		if t.Len() == 0 {
			fmt.Fprintf(wErr, "%s: no measurements; skipping\n", file)
			continue
		}
		run, err := d.InsertRun(ctx, infos[i], t)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		archived++
		if verbose {
			fmt.Fprintf(w, "%s: run %d (%s, %d threads, dataset %d)\n", file, run.ID, run.Mode, run.Threads, run.Dataset)
		}
	}
	n, err := d.CountRuns(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d file(s) archived; %d run(s) in archive\n", archived, n)
	return nil
}

func upload(ctx context.Context, w io.Writer, bucket, prefix, dir string, verbose bool) error {
	var paths []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Type().IsRegular() && isChart(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no charts in %s", dir)
	}

	u, err := gcs.NewUploader(ctx, bucket, prefix)
	if err != nil {
		return err
	}
	defer u.Close()

	start := time.Now()
	for _, p := range paths {
		url, err := u.Upload(ctx, p)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintln(w, url)
		}
	}
	fmt.Fprintf(w, "%d chart(s) uploaded to gs://%s/%s in %.2f seconds\n", len(paths), bucket, prefix, time.Since(start).Seconds())
	return nil
}

func isChart(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".png", ".svg":
		return true
	}
	return false
}
