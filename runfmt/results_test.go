// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseResults(t *testing.T) {
	in := "Vectorization: 12 ms\nTF-IDF:40 ms\nAccuracy: 0.93\r\nno colon here\nURL: http://x\n"
	got, err := ParseResults(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []SectionTime{
		{"Vectorization", "12 ms"},
		{"TF-IDF", "40 ms"},
		{"Accuracy", "0.93"},
		{"no colon here", ""},
		{"URL", "http://x"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseResults mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLongReadBack(t *testing.T) {
	var sb strings.Builder
	err := WriteLong(&sb, []SectionTime{{"Vectorization", "12 ms"}, {"Accuracy", "0.9"}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "Section,Time\nVectorization,12 ms\nAccuracy,0.9\n"; sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
	tab, err := NewReader(strings.NewReader(sb.String()), "").Read()
	if err != nil {
		t.Fatal(err)
	}
	if got := Values(tab, Vectorization); len(got) != 1 || got[0] != 12 {
		t.Errorf("Vectorization = %v, want [12]", got)
	}
}

func TestWriteWide(t *testing.T) {
	var sb strings.Builder
	err := WriteWide(&sb, []string{"A", "B"}, [][]float64{{1.5, math.NaN()}, {2}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "A,B\n1.5,\n2,\n"; sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}
