// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestReformat(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "raw.csv"), filepath.Join(dir, "fixed.csv")
	os.WriteFile(in, []byte("category|filename|content\nsport|1.txt|A close match\n"), 0666)

	var stdout, stderr bytes.Buffer
	if err := datafix(&stdout, &stderr, []string{"reformat", in, out}); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(out)
	if want := "category,text\nsport,A close match\n"; string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !strings.Contains(stdout.String(), `delimiter '|'`) {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestShuffle(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "train.csv"), filepath.Join(dir, "shuffled.csv")
	data := "category,text\na,1\nb,2\nc,3\n"
	os.WriteFile(in, []byte(data), 0666)

	var stdout, stderr bytes.Buffer
	if err := datafix(&stdout, &stderr, []string{"shuffle", "-seed", "7", in, out}); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(out)
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if lines[0] != "category,text" {
		t.Errorf("header = %q", lines[0])
	}
	sort.Strings(lines[1:])
	if strings.Join(lines, "\n")+"\n" != data {
		t.Errorf("shuffled output is not a permutation of the input:\n%s", got)
	}
}

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "unknown.txt")
	text, labels := filepath.Join(dir, "text.txt"), filepath.Join(dir, "labels.txt")
	os.WriteFile(in, []byte("tech,New phones\nsport, Cup final\n"), 0666)

	var stdout, stderr bytes.Buffer
	if err := datafix(&stdout, &stderr, []string{"split", in, text, labels}); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(text); string(got) != "New phones\nCup final\n" {
		t.Errorf("text = %q", got)
	}
	if got, _ := os.ReadFile(labels); string(got) != "tech\nsport\n" {
		t.Errorf("labels = %q", got)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"explode"}} {
		var stdout, stderr bytes.Buffer
		if err := datafix(&stdout, &stderr, args); !errors.Is(err, flag.ErrHelp) {
			t.Errorf("datafix %v: got %v, want flag.ErrHelp", args, err)
		}
	}
	var stdout, stderr bytes.Buffer
	if err := datafix(&stdout, &stderr, []string{"split", "a", "b", "c", "d"}); err == nil {
		t.Error("datafix split with four paths succeeded")
	}
}
