// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column widths of rendered tables.
const (
	cellWidth     = 15
	labelWidth    = 15
	algLabelWidth = 20
)

// Table holds mean durations, one row per size or per algorithm and one
// column per distribution.
type Table struct {
	// Caption is printed above the header, e.g. "Size: 1,000".
	Caption string

	// RowHeader names the row label column: "Size" or "Algorithm".
	RowHeader string

	Columns []string
	Rows    []Row
}

// Row is one labelled line of a Table.
type Row struct {
	Label string
	Cells []time.Duration
}

// printer formats sizes and timings with thousands separators.
var printer = message.NewPrinter(language.English)

// formatSize renders an input size for a row label or caption.
func formatSize(n int) string {
	return printer.Sprintf("%d", n)
}

// formatMillis renders d as milliseconds with three decimals.
func formatMillis(d time.Duration) string {
	return printer.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}

func (t *Table) labelWidth() int {
	if t.RowHeader == "Algorithm" {
		return algLabelWidth
	}
	return labelWidth
}

// Render writes t as fixed-width text followed by a blank line.
func (t *Table) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.render(bw)
	return bw.Flush()
}

func (t *Table) render(w *bufio.Writer) {
	lw := t.labelWidth()
	if t.Caption != "" {
		fmt.Fprintln(w, t.Caption)
	}

	fmt.Fprintf(w, "%-*s", lw, t.RowHeader)
	for _, c := range t.Columns {
		fmt.Fprintf(w, "%-*s", cellWidth, c)
	}
	fmt.Fprintln(w)

	for _, r := range t.Rows {
		fmt.Fprintf(w, "%-*s", lw, r.Label)
		for _, d := range r.Cells {
			fmt.Fprintf(w, "%-*s", cellWidth, formatMillis(d))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// WriteReport writes a titled report: a banner, the host line and every
// table in order.
func WriteReport(w io.Writer, title string, host HostInfo, tables ...*Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "===== %s =====\n", title)
	fmt.Fprintf(bw, "Host: %s\n", host)
	fmt.Fprintf(bw, "Times in milliseconds\n\n")
	for _, t := range tables {
		t.render(bw)
	}
	return bw.Flush()
}

// String renders t, mostly for logging and tests.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}
