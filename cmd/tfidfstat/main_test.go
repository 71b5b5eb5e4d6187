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

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/internal/diff"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/storage/db"
)

func TestText(t *testing.T) {
	golden(t, "oldnew", "seq.csv", "par.csv")
	golden(t, "seq", "seq.csv")
	golden(t, "empty", "seq.csv", "empty.csv")
}

func TestHTML(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := tfidfstat(&out, &errOut, []string{"-format", "html", "testdata/seq.csv", "testdata/par.csv"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>TF-IDF Run Comparison</title>", "<td class='section'>Vectorization", "−50.00%", "</html>\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestSortFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := tfidfstat(&out, &errOut, []string{"-sort", "name", "testdata/seq.csv"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[1], "TF-IDF") || !strings.HasPrefix(lines[2], "Vectorization") {
		t.Errorf("rows not sorted by name:\n%s", out.String())
	}
}

func TestErrors(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"testdata/missing.csv"}, "missing.csv"},
		{[]string{"-format", "xml", "testdata/seq.csv"}, `unknown -format "xml"`},
		{[]string{"-sort", "size", "testdata/seq.csv"}, `unknown sort order "size"`},
		{[]string{"-db", "nodsn", "x"}, "want driver:dsn"},
	} {
		var out, errOut bytes.Buffer
		err := tfidfstat(&out, &errOut, test.args)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("tfidfstat %v: got error %v, want %q", test.args, err, test.want)
		}
	}
}

func TestDB(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "runs.db")
	d, err := db.OpenSQL("sqlite3", dsn)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, name := range []string{"seq.csv", "par.csv"} {
		tab, err := runfmt.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		info := db.RunInfo{Mode: "sequential", Threads: 1, Dataset: 1, Source: name}
		if name == "par.csv" {
			info = db.RunInfo{Mode: "parallel", Threads: 4, Dataset: 1, Source: name}
		}
		if _, err := d.InsertRun(ctx, info, tab); err != nil {
			t.Fatal(err)
		}
	}
	d.Close()

	var out, errOut bytes.Buffer
	args := []string{"-db", "sqlite3:" + dsn, "seq.csv=sequential-1-processed.csv", "par.csv=parallel-4-1-processed.csv", "parallel-8-1-processed.csv"}
	if err := tfidfstat(&out, &errOut, args); err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile("testdata/oldnew.stdout")
	if err != nil {
		t.Fatal(err)
	}
	if d := diff.Diff(string(want), out.String()); d != "" {
		t.Errorf("output from archive differs from file output:\n%s", d)
	}
	if got := errOut.String(); got != "parallel-8-1-processed.csv: no archived runs\n" {
		t.Errorf("stderr = %q", got)
	}
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var got, gotErr bytes.Buffer
	t.Logf("tfidfstat %s", strings.Join(args, " "))
	if err := tfidfstat(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}

	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("%s differs from %s:\n%s", sub, wantPath, d)
	}
}
