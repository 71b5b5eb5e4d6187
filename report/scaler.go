// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "fmt"

// A Scaler is a function that scales and formats a measurement.
// All measurements within a given table row are formatted
// using the same scaler, so that the units are consistent
// across the row.
type Scaler func(float64) string

// NewScaler returns a Scaler appropriate for formatting the
// measurement val, which has the given unit. The unit is "ms" for
// section timings and "" for accuracy fractions.
func NewScaler(val float64, unit string) Scaler {
	if unit == "ms" {
		return timeScaler(val)
	}
	return func(v float64) string {
		return fmt.Sprintf("%.2f%%", v*100)
	}
}

// timeScaler picks a unit for a duration given in milliseconds.
func timeScaler(ms float64) Scaler {
	var format string
	var scale float64
	switch x := ms / 1e3; {
	case x >= 5995:
		format, scale = "%.1fmin", 1.0/60
	case x >= 99.5:
		format, scale = "%.0fs", 1
	case x >= 9.95:
		format, scale = "%.1fs", 1
	case x >= 0.995:
		format, scale = "%.2fs", 1
	case x >= 0.0995:
		format, scale = "%.0fms", 1000
	case x >= 0.00995:
		format, scale = "%.1fms", 1000
	case x >= 0.000995:
		format, scale = "%.2fms", 1000
	case x >= 0.0000995:
		format, scale = "%.0fµs", 1000*1000
	case x >= 0.00000995:
		format, scale = "%.1fµs", 1000*1000
	default:
		format, scale = "%.2fµs", 1000*1000
	}
	return func(ms float64) string {
		return fmt.Sprintf(format, ms/1e3*scale)
	}
}
