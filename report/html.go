// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/safehtml/template"
)

// Each table becomes its own HTML table: timings carry a speedup
// column, accuracy tables do not.
var htmlTemplate = template.Must(template.New("").Funcs(htmlFuncs).Parse(`
{{- range $table := . -}}
{{- $timing := eq .Metric "time/op" -}}
<table class='tfidfstat {{if $timing}}timing{{else}}accuracy{{end}}'>
<caption>{{if $timing}}Section timings{{else}}Classification accuracy{{end}}</caption>
<thead>
<tr><th>section<th>unit{{range .Configs}}<th>{{.}}{{end}}{{if .OldNewDelta}}<th>delta{{if $timing}}<th>speedup{{end}}<th>note{{end}}
</thead>
<tbody>
{{range .Rows -}}
{{if $table.OldNewDelta -}}
<tr class='{{if eq .Change 1}}better{{else if eq .Change -1}}worse{{else}}unchanged{{end}}'>
{{- else -}}
<tr>
{{- end -}}
<td class='section'>{{.Section}}<td class='unit'>{{if $timing}}mean time{{else}}mean accuracy{{end}}
{{- range .Cells}}<td>{{.}}{{end}}
{{- if $table.OldNewDelta}}<td class='{{if eq .Delta "~"}}nodelta{{else}}delta{{end}}'>{{replace .Delta "-" "−" -1}}
{{- if $timing}}<td class='speedup'>{{speedup .Speedup}}{{end}}<td class='note'>{{.Note}}{{end}}
{{end -}}
</tbody>
</table>
{{end -}}
`))

var htmlFuncs = template.FuncMap{
	"replace": strings.Replace,
	"speedup": formatSpeedup,
}

// formatSpeedup renders a seq/par ratio, or nothing when it is undefined.
func formatSpeedup(s float64) string {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return ""
	}
	return fmt.Sprintf("%.2f×", s)
}

// FormatHTML writes an HTML formatting of the tables to w.
func FormatHTML(w io.Writer, tables []*Table) error {
	return htmlTemplate.Execute(w, tables)
}
