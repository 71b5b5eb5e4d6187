// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runstat

import "math"

// Ratio returns num/den, or NaN if den is zero or either operand is
// NaN.
func Ratio(num, den float64) float64 {
	if den == 0 || math.IsNaN(num) || math.IsNaN(den) {
		return math.NaN()
	}
	return num / den
}

// Speedup returns how many times faster v is than base, that is
// base/v. It is NaN if v is zero.
func Speedup(base, v float64) float64 {
	return Ratio(base, v)
}

// Log1p returns ln(1+x) for each x in xs.
func Log1p(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Log1p(x)
	}
	return out
}

// Fraction rescales accuracy values to the range [0,1]. Producers
// disagree on whether accuracy is a fraction or a percentage, so if
// any value exceeds 1 every value is taken to be a percentage.
func Fraction(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	pct := false
	for _, x := range xs {
		if x > 1 {
			pct = true
			break
		}
	}
	if pct {
		for i := range out {
			out[i] /= 100
		}
	}
	return out
}

// MinutesFromMillis converts a duration in milliseconds to minutes.
func MinutesFromMillis(ms float64) float64 {
	return ms / 60000
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}
