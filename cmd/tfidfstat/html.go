// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/AndrewKelton/Parallel-TF-IDF-Classification/report"
)

func formatHTML(w io.Writer, tables []*report.Table) error {
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if err := report.FormatHTML(w, tables); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>TF-IDF Run Comparison</title>
<style>
.tfidfstat { border-collapse: collapse; margin-bottom: 1.5em; }
.tfidfstat caption { text-align: left; font-weight: bold; }
.tfidfstat th:nth-child(-n+2) { text-align: left; }
.tfidfstat thead th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
.tfidfstat td.unit { color: #666; }
.tfidfstat tbody td:nth-child(1n+3):not(.note) { text-align: right; padding: 0em 1em; }
.tfidfstat .nodelta { text-align: center !important; }
.tfidfstat .better td.delta { font-weight: bold; }
.tfidfstat .worse td.delta { font-weight: bold; color: #c00; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
