// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/internal/diff"
)

const results = `Vectorization: 120
TF-IDF: 45 ms
Categories: 9
Vectorization: 118
TF-IDF: 44
Categories: 8
`

func run(t *testing.T, args ...string) (outDir string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "parallel-4-1-results.txt")
	if err := os.WriteFile(in, []byte(results), 0666); err != nil {
		t.Fatal(err)
	}
	outDir = filepath.Join(dir, "processed")
	var stdout, stderr bytes.Buffer
	if err := resultcsv(&stdout, &stderr, append(append([]string{"-out", outDir}, args...), in)); err != nil {
		t.Fatal(err)
	}
	return outDir
}

func check(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := diff.Diff(want, string(got)); d != "" {
		t.Errorf("%s:\n%s", path, d)
	}
}

func TestLong(t *testing.T) {
	out := run(t)
	check(t, filepath.Join(out, "parallel-4-1-processed.csv"), `Section,Time
Vectorization,120
TF-IDF,45 ms
Categories,9
Vectorization,118
TF-IDF,44
Categories,8
`)
}

func TestWide(t *testing.T) {
	out := run(t, "-wide")
	check(t, filepath.Join(out, "parallel-4-1-processed.csv"), `Vectorization,TF-IDF,Categories
120,45,9
118,44,8
`)
}

func TestMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := resultcsv(&stdout, &stderr, []string{"-out", t.TempDir(), "nonexistent-results.txt"})
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want not-exist error", err)
	}
}
