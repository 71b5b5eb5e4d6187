// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset prepares raw news-article datasets for the
// categorization engine.
//
// The engine trains on a CSV with a "category,text" header and one
// article per record, and classifies a text file with one article per
// line. Reformat, Shuffle and SplitLabeled convert the published
// datasets into those shapes.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// Delimiters are the field separators DetectDelimiter looks for, in
// order of preference.
var Delimiters = []rune{'\x1b', '|', ';', '\t'}

// sampleSize is how much of the input DetectDelimiter examines.
const sampleSize = 1000

// DetectDelimiter returns the first of Delimiters that occurs in
// sample, or ',' if none does.
func DetectDelimiter(sample string) rune {
	for _, d := range Delimiters {
		if strings.ContainsRune(sample, d) {
			return d
		}
	}
	return ','
}

// ErrMissingHeaders is returned by Reformat when the input has no
// "category" or "content" column.
var ErrMissingHeaders = errors.New("expected headers not found; check delimiter or header formatting")

// Reformat reads a delimited dataset with (at least) "category" and
// "content" columns from r and writes it to w as a "category,text"
// CSV. Header names are matched ignoring case and surrounding space.
// Newlines in the content are replaced with spaces so that every
// article is a single line. Reformat returns the delimiter it
// detected.
func Reformat(r io.Reader, w io.Writer) (rune, error) {
	br := bufio.NewReaderSize(r, sampleSize)
	if b, _ := br.Peek(3); string(b) == "\ufeff" {
		br.Discard(3)
	}
	sample, err := br.Peek(sampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}
	delim := DetectDelimiter(string(sample))

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	header, err := cr.Read()
	if err == io.EOF {
		return delim, ErrMissingHeaders
	} else if err != nil {
		return delim, err
	}
	cat, content := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "category":
			if cat < 0 {
				cat = i
			}
		case "content":
			if content < 0 {
				content = i
			}
		}
	}
	if cat < 0 || content < 0 {
		return delim, ErrMissingHeaders
	}

	cw := csv.NewWriter(w)
	cw.Write([]string{"category", "text"})
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return delim, err
		}
		if len(rec) <= max(cat, content) {
			line, _ := cr.FieldPos(0)
			return delim, fmt.Errorf("record on line %d: expected at least %d fields, got %d", line, max(cat, content)+1, len(rec))
		}
		text := strings.ReplaceAll(strings.TrimSpace(rec[content]), "\n", " ")
		cw.Write([]string{strings.TrimSpace(rec[cat]), text})
	}
	cw.Flush()
	return delim, cw.Error()
}

// Shuffle copies the CSV in r to w with the header first and the
// remaining records in a random order drawn from rnd.
func Shuffle(r io.Reader, w io.Writer, rnd *rand.Rand) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(recs) > 1 {
		rows := recs[1:]
		rnd.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	}
	cw := csv.NewWriter(w)
	cw.WriteAll(recs)
	return cw.Error()
}

// SplitLabeled splits each "label,text" line of r at its first comma,
// writing the label to labels and the text to text, one per line and
// with surrounding space removed. Lines without a comma are skipped.
// SplitLabeled returns the number of lines written.
func SplitLabeled(r io.Reader, text, labels io.Writer) (int, error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, 16<<20)
	tw, lw := bufio.NewWriter(text), bufio.NewWriter(labels)
	n := 0
	for s.Scan() {
		label, rest, ok := strings.Cut(s.Text(), ",")
		if !ok {
			continue
		}
		fmt.Fprintln(lw, strings.TrimSpace(label))
		fmt.Fprintln(tw, strings.TrimSpace(rest))
		n++
	}
	if err := s.Err(); err != nil {
		return n, err
	}
	if err := tw.Flush(); err != nil {
		return n, err
	}
	return n, lw.Flush()
}
