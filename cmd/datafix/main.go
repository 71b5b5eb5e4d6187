// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Datafix prepares raw datasets for the TF-IDF engine.
//
// Usage:
//
//	datafix reformat [in.csv [out.csv]]
//	datafix shuffle [-seed n] [in.csv [out.csv]]
//	datafix split [in.txt [text.txt labels.txt]]
//
// Reformat rewrites a delimited dataset with category and content
// columns as a category,text CSV with one article per line. Shuffle
// randomizes the order of the records of a CSV, keeping its header.
// Split separates "label,text" lines into a file of texts and a file
// of labels. Each subcommand defaults to the dataset paths the
// harness uses.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/dataset"
)

func main() {
	log.SetPrefix("datafix: ")
	log.SetFlags(0)
	if err := datafix(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type command struct {
	name     string
	defaults []string
	run      func(w io.Writer, flags *flag.FlagSet, paths []string) error
	setFlags func(flags *flag.FlagSet)
}

var seed *int64

var commands = []command{
	{
		name:     "reformat",
		defaults: []string{"tests/data/bbc-news-data.csv", "tests/data/bbc-news-data-fixed.csv"},
		run:      reformat,
	},
	{
		name:     "shuffle",
		defaults: []string{"tests/data/dataset-3/training-data.csv", "tests/data/dataset-3/shuffled_output.csv"},
		run:      shuffle,
		setFlags: func(flags *flag.FlagSet) {
			seed = flags.Int64("seed", 0, "random `seed` (default: time-based)")
		},
	},
	{
		name:     "split",
		defaults: []string{"tests/data/dataset-3/unknown_text_unfixed.txt", "tests/data/dataset-3/testing-data.txt", "tests/data/dataset-3/testing-correct-data.txt"},
		run:      split,
	},
}

func datafix(w, wErr io.Writer, args []string) error {
	if len(args) == 0 {
		return usageError(wErr)
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		flags := flag.NewFlagSet("datafix "+c.name, flag.ContinueOnError)
		flags.SetOutput(wErr)
		if c.setFlags != nil {
			c.setFlags(flags)
		}
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		paths := flags.Args()
		if len(paths) > len(c.defaults) {
			return fmt.Errorf("%s: too many arguments", c.name)
		}
		// Explicit paths override the defaults from the front.
		paths = append(paths, c.defaults[len(paths):]...)
		return c.run(w, flags, paths)
	}
	return usageError(wErr)
}

func usageError(wErr io.Writer) error {
	fmt.Fprintf(wErr, "usage: datafix reformat|shuffle|split [flags] [paths]\n")
	return flag.ErrHelp
}

func reformat(w io.Writer, _ *flag.FlagSet, paths []string) error {
	in, err := os.Open(paths[0])
	if err != nil {
		return err
	}
	defer in.Close()
	var buf bytes.Buffer
	delim, err := dataset.Reformat(in, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", paths[0], err)
	}
	if err := os.WriteFile(paths[1], buf.Bytes(), 0666); err != nil {
		return err
	}
	fmt.Fprintf(w, "CSV file reformatted using delimiter %q and saved as %s\n", delim, paths[1])
	return nil
}

func shuffle(w io.Writer, flags *flag.FlagSet, paths []string) error {
	s := *seed
	if !isFlagSet(flags, "seed") {
		s = time.Now().UnixNano()
	}
	in, err := os.Open(paths[0])
	if err != nil {
		return err
	}
	defer in.Close()
	var buf bytes.Buffer
	if err := dataset.Shuffle(in, &buf, rand.New(rand.NewSource(s))); err != nil {
		return fmt.Errorf("%s: %w", paths[0], err)
	}
	if err := os.WriteFile(paths[1], buf.Bytes(), 0666); err != nil {
		return err
	}
	fmt.Fprintf(w, "Shuffled CSV file saved as %s\n", paths[1])
	return nil
}

func split(w io.Writer, _ *flag.FlagSet, paths []string) error {
	in, err := os.Open(paths[0])
	if err != nil {
		return err
	}
	defer in.Close()
	var text, labels bytes.Buffer
	n, err := dataset.SplitLabeled(in, &text, &labels)
	if err != nil {
		return fmt.Errorf("%s: %w", paths[0], err)
	}
	if err := os.WriteFile(paths[1], text.Bytes(), 0666); err != nil {
		return err
	}
	if err := os.WriteFile(paths[2], labels.Bytes(), 0666); err != nil {
		return err
	}
	fmt.Fprintf(w, "Split %d lines into %s and %s\n", n, paths[1], paths[2])
	return nil
}

func isFlagSet(flags *flag.FlagSet, name string) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
