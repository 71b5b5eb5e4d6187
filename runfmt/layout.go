// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Default directories, relative to the repository root, used when a
// tool is run without arguments.
const (
	DefaultResultsDir = "tests/test-output/results"
	DefaultDataDir    = "tests/test-output/processed-data-results"
	DefaultGraphDir   = "tests/test-output/graphs"
)

// Threads is the thread-count axis swept by the benchmark harness.
// A thread count of 1 is the sequential run.
var Threads = []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}

// A Layout names processed-data files within a directory.
type Layout struct {
	Dir string
}

// Processed returns the path of the processed-data file for the given
// thread count and dataset number. Dataset 0 names the un-numbered
// files written by the single-comparison harness.
func (l Layout) Processed(threads, dataset int) string {
	var name string
	switch {
	case dataset == 0 && threads == 1:
		name = "sequential-processed.csv"
	case dataset == 0:
		name = "parallel-processed.csv"
	case threads == 1:
		name = fmt.Sprintf("sequential-%d-processed.csv", dataset)
	default:
		name = fmt.Sprintf("parallel-%d-%d-processed.csv", threads, dataset)
	}
	return filepath.Join(l.Dir, name)
}

// Sequential returns the path of the sequential file for dataset.
func (l Layout) Sequential(dataset int) string {
	return l.Processed(1, dataset)
}

// Parallel returns the path of the parallel file for dataset. The
// single-comparison files do not record a thread count, so threads
// is ignored when dataset is 0.
func (l Layout) Parallel(threads, dataset int) string {
	if threads == 1 {
		threads = 2
	}
	return l.Processed(threads, dataset)
}

// ProcessedName returns the processed-data file name for the engine
// results file named results, replacing a "-results.txt" (or ".txt")
// suffix with "-processed.csv".
func ProcessedName(results string) string {
	base := filepath.Base(results)
	base = strings.TrimSuffix(base, ".txt")
	base = strings.TrimSuffix(base, "-results")
	return base + "-processed.csv"
}

// A FileInfo describes a processed-data file name.
type FileInfo struct {
	Mode    string // "sequential" or "parallel"
	Threads int    // 0 if the name does not record it
	Dataset int    // 0 for the un-numbered files
}

// ParseName recovers the mode, thread count and dataset from a
// processed-data file name produced by Layout.Processed. It reports
// false if name does not follow the convention.
func ParseName(name string) (FileInfo, bool) {
	base := filepath.Base(name)
	base, ok := strings.CutSuffix(base, "-processed.csv")
	if !ok {
		return FileInfo{}, false
	}
	parts := strings.Split(base, "-")
	nums := make([]int, 0, 2)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return FileInfo{}, false
		}
		nums = append(nums, n)
	}
	switch {
	case parts[0] == "sequential" && len(nums) == 0:
		return FileInfo{"sequential", 1, 0}, true
	case parts[0] == "sequential" && len(nums) == 1:
		return FileInfo{"sequential", 1, nums[0]}, true
	case parts[0] == "parallel" && len(nums) == 0:
		return FileInfo{"parallel", 0, 0}, true
	case parts[0] == "parallel" && len(nums) == 2:
		return FileInfo{"parallel", nums[0], nums[1]}, true
	}
	return FileInfo{}, false
}

// ParseInts parses a comma-separated list of non-negative integers,
// as given to the -threads and -datasets flags.
func ParseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
