// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectDelimiter(t *testing.T) {
	for _, test := range []struct {
		sample string
		want   rune
	}{
		{"a,b,c", ','},
		{"a\tb;c", ';'},
		{"a|b\tc", '|'},
		{"a\x1bb|c", '\x1b'},
		{"a\tb", '\t'},
		{"", ','},
	} {
		if got := DetectDelimiter(test.sample); got != test.want {
			t.Errorf("DetectDelimiter(%q) = %q, want %q", test.sample, got, test.want)
		}
	}
}

func TestReformat(t *testing.T) {
	in := "\ufeffFilename\t Category \tTitle\tCONTENT\n" +
		"001.txt\tbusiness\tAd sales\t  Quarterly profits rose \n" +
		"002.txt\t sport \tWin\t\"Two\nlines\"\n"
	var out bytes.Buffer
	delim, err := Reformat(strings.NewReader(in), &out)
	if err != nil {
		t.Fatal(err)
	}
	if delim != '\t' {
		t.Errorf("delimiter = %q, want tab", delim)
	}
	want := "category,text\nbusiness,Quarterly profits rose\nsport,Two lines\n"
	if got := out.String(); got != want {
		t.Errorf("Reformat output:\n%s\nwant:\n%s", got, want)
	}
}

func TestReformatErrors(t *testing.T) {
	for _, in := range []string{"", "category,text\nsport,x\n", "a;b\n"} {
		_, err := Reformat(strings.NewReader(in), new(bytes.Buffer))
		if !errors.Is(err, ErrMissingHeaders) {
			t.Errorf("Reformat(%q): got %v, want ErrMissingHeaders", in, err)
		}
	}

	_, err := Reformat(strings.NewReader("category,content\nsport\n"), new(bytes.Buffer))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Reformat with short record: got %v", err)
	}
}

func TestShuffle(t *testing.T) {
	in := "category,text\na,1\nb,2\nc,3\nd,4\ne,5\n"
	var out bytes.Buffer
	if err := Shuffle(strings.NewReader(in), &out, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	want := strings.Split(strings.TrimSuffix(in, "\n"), "\n")
	if got[0] != want[0] {
		t.Errorf("header = %q, want %q", got[0], want[0])
	}
	sort.Strings(got[1:])
	if !cmp.Equal(want, got) {
		t.Errorf("shuffled rows are not a permutation: %q", got)
	}

	out.Reset()
	if err := Shuffle(strings.NewReader("category,text\n"), &out, rand.New(rand.NewSource(1))); err != nil || out.String() != "category,text\n" {
		t.Errorf("Shuffle of header only = %q, %v", out.String(), err)
	}
}

func TestSplitLabeled(t *testing.T) {
	in := "sport, The match, was close \nno comma here\n tech ,Phones\n"
	var text, labels bytes.Buffer
	n, err := SplitLabeled(strings.NewReader(in), &text, &labels)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("SplitLabeled wrote %d lines, want 2", n)
	}
	if want := "The match, was close\nPhones\n"; text.String() != want {
		t.Errorf("text = %q, want %q", text.String(), want)
	}
	if want := "sport\ntech\n"; labels.String() != want {
		t.Errorf("labels = %q, want %q", labels.String(), want)
	}
}
