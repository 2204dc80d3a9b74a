// Package render provides output renderers for the tablepipe pipeline.
// This file implements the Markdown renderer, which lays the records out
// as a GitHub-flavored table padded to display width.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gaurav-prasanna/tablepipe/core"
	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// MarkdownRenderer writes records as a Markdown table.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the table. Columns come from meta.Columns when set, else
// from the records in order of first appearance. Null and missing cells
// render empty.
func (r *MarkdownRenderer) Render(records []table.Record, meta core.DocumentMetadata) ([]byte, error) {
	cols := columnsOf(records, meta)
	if len(cols) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, cols)
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			v, _ := rec.Get(c)
			row[i] = escapeCell(v)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var b strings.Builder
	writeRow(&b, rows[0], widths)
	sep := make([]string, len(cols))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeRow(&b, sep, widths)
	for _, row := range rows[1:] {
		writeRow(&b, row, widths)
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(cell, widths[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// escapeCell keeps cell text from breaking the table syntax.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// columnsOf returns the column order for tabular renderers.
func columnsOf(records []table.Record, meta core.DocumentMetadata) []string {
	if len(meta.Columns) > 0 {
		return meta.Columns
	}
	var cols []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, name := range rec.Names() {
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
	}
	return cols
}
