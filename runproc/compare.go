// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runfmt"
	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/runstat"
)

// A SectionComparison compares the mean sequential and parallel time
// of one section.
type SectionComparison struct {
	Section        string
	Seq, Par       float64 // mean time in ms
	Ratio          float64 // Seq/Par
	LogSeq, LogPar float64 // ln(1+Seq), ln(1+Par)
}

// A Comparison is the result of Compare.
type Comparison struct {
	Sections []SectionComparison

	// AccuracySeq and AccuracyPar are the mean accuracies as
	// fractions in [0,1]. They are NaN if the input has no
	// Accuracy column.
	AccuracySeq, AccuracyPar float64
}

// Compare joins the per-section means of a sequential and a parallel
// table. Only sections present in both tables are compared, in the
// order they appear in seq. Accuracy is reported separately.
func Compare(seq, par *table.Table) *Comparison {
	s := table.Rename(SectionMeans(runfmt.Timings(seq)), ColMean, ColSeq)
	p := table.Rename(SectionMeans(runfmt.Timings(par)), ColMean, ColPar)
	j := table.Join(s, runfmt.ColSection, p, runfmt.ColSection)
	j = table.MapCols(j, func(seq, par, ratio, logSeq, logPar []float64) {
		for i := range seq {
			ratio[i] = runstat.Ratio(seq[i], par[i])
		}
		copy(logSeq, runstat.Log1p(seq))
		copy(logPar, runstat.Log1p(par))
	}, ColSeq, ColPar)(ColRatio, ColLogSeq, ColLogPar)
	t := table.Flatten(j)

	c := &Comparison{
		AccuracySeq: meanAccuracy(seq),
		AccuracyPar: meanAccuracy(par),
	}
	if t.Len() == 0 {
		return c
	}
	secs := t.MustColumn(runfmt.ColSection).([]string)
	cols := make([][]float64, 5)
	for i, name := range []string{ColSeq, ColPar, ColRatio, ColLogSeq, ColLogPar} {
		cols[i] = t.MustColumn(name).([]float64)
	}
	for i, sec := range secs {
		c.Sections = append(c.Sections, SectionComparison{
			Section: sec,
			Seq:     cols[0][i],
			Par:     cols[1][i],
			Ratio:   cols[2][i],
			LogSeq:  cols[3][i],
			LogPar:  cols[4][i],
		})
	}
	return c
}

// meanAccuracy returns the mean Accuracy of t as a fraction.
func meanAccuracy(t *table.Table) float64 {
	return runstat.NewSample(runstat.Fraction(runfmt.Values(t, runfmt.Accuracy))).Mean()
}

// PairwiseSpeedup computes, for each section, the mean of seq/par
// over every pairing of a sequential run with a parallel run of that
// section. The result is sorted by section name. Pairs with a zero
// parallel time are skipped.
func PairwiseSpeedup(seq, par *table.Table) []SectionValue {
	seq, par = runfmt.Timings(seq), runfmt.Timings(par)
	if seq.Len() == 0 || par.Len() == 0 {
		return nil
	}
	s := table.Rename(project(seq, runfmt.ColSection, runfmt.ColValue), runfmt.ColValue, ColSeq)
	p := table.Rename(project(par, runfmt.ColSection, runfmt.ColValue), runfmt.ColValue, ColPar)
	j := table.Join(s, runfmt.ColSection, p, runfmt.ColSection)
	j = table.MapCols(j, func(seq, par, speedup []float64) {
		for i := range seq {
			speedup[i] = runstat.Speedup(seq[i], par[i])
		}
	}, ColSeq, ColPar)(ColSpeedup)
	if len(j.Tables()) == 0 {
		return nil
	}
	j = ggstat.Agg(runfmt.ColSection)(aggNaNMean(ColSpeedup)).F(j)
	j = table.SortBy(j, runfmt.ColSection)
	return sectionValues(table.Flatten(j), "mean "+ColSpeedup)
}
