// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/db"
)

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	par := filepath.Join(dir, "parallel-4-2-processed.csv")
	other := filepath.Join(dir, "extra.csv")
	os.WriteFile(par, []byte("Vectorization,TF-IDF\n10,4\n11,5\n"), 0666)
	os.WriteFile(other, []byte("Section,Time\nVectorization,30\n"), 0666)
	dsn := filepath.Join(dir, "archive", "runs.db")

	ctx := context.Background()
	var stdout, stderr bytes.Buffer
	if err := tfidfsave(ctx, &stdout, &stderr, []string{"-db", "sqlite3:" + dsn, "-v", par}); err != nil {
		t.Fatal(err)
	}
	if err := tfidfsave(ctx, &stdout, &stderr, []string{"-db", "sqlite3:" + dsn, "-mode", "sequential", "-threads", "1", "-dataset", "2", other}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "parallel-4-2-processed.csv: run 1 (parallel, 4 threads, dataset 2)") ||
		!strings.Contains(stdout.String(), "2 run(s) in archive") {
		t.Errorf("stdout:\n%s", stdout.String())
	}

	d, err := db.OpenSQL("sqlite3", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	runs, err := d.Runs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []db.RunInfo{
		{Mode: "parallel", Threads: 4, Dataset: 2, Source: "parallel-4-2-processed.csv"},
		{Mode: "sequential", Threads: 1, Dataset: 2, Source: "extra.csv"},
	}
	if len(runs) != len(want) {
		t.Fatalf("archive has %d runs, want %d", len(runs), len(want))
	}
	for i, r := range runs {
		if r.RunInfo != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, r.RunInfo, want[i])
		}
	}
	tab, err := d.LoadTable(ctx, "parallel", 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 4 {
		t.Errorf("parallel run has %d measurements, want 4", tab.Len())
	}
}

func TestArchiveSkipsEmpty(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "sequential-3-processed.csv")
	empty := filepath.Join(dir, "parallel-2-3-processed.csv")
	os.WriteFile(full, []byte("Vectorization\n7\n"), 0666)
	os.WriteFile(empty, []byte("Vectorization,TF-IDF\n"), 0666)
	dsn := filepath.Join(dir, "runs.db")

	var stdout, stderr bytes.Buffer
	if err := tfidfsave(context.Background(), &stdout, &stderr, []string{"-db", "sqlite3:" + dsn, full, empty}); err != nil {
		t.Fatal(err)
	}
	if got, want := stdout.String(), "1 file(s) archived; 1 run(s) in archive\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := stderr.String(), empty+": no measurements; skipping\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "data.csv")
	os.WriteFile(plain, []byte("Vectorization\n1\n"), 0666)
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{plain}, "cannot infer mode"},
		{[]string{"-mode", "turbo", plain}, `bad -mode "turbo"`},
		{[]string{"-mode", "sequential", "-db", "sqlite3", plain}, "want driver:dsn"},
		{[]string{"-mode", "sequential", "-db", "sqlite3:" + filepath.Join(dir, "r.db"), filepath.Join(dir, "missing.csv")}, "missing.csv"},
	} {
		var stdout, stderr bytes.Buffer
		err := tfidfsave(context.Background(), &stdout, &stderr, test.args)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("tfidfsave %v: got %v, want %q", test.args, err, test.want)
		}
	}
}

func TestIsChart(t *testing.T) {
	for name, want := range map[string]bool{"a.pdf": true, "b.SVG": true, "c.png": true, "d.csv": false, "diffy": false} {
		if got := isChart(name); got != want {
			t.Errorf("isChart(%q) = %v, want %v", name, got, want)
		}
	}
}
