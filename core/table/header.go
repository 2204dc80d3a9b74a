// Package table is a generic engine for splitting the human-oriented tables
// printed by command-line tools into records. It knows nothing about the
// command that produced the text: callers hand it pre-cleaned lines whose
// first line is the header, and get back one Record per data line.
//
// Two strategies are provided. SimpleParse splits on whitespace and lets only
// the last column hold spaces. SparseParse uses the horizontal position of
// each header label to find column boundaries, so it tolerates blank cells
// and cells with embedded spaces.
package table

import (
	"errors"
	"fmt"
)

// Unbounded is the anchor of the last column, whose content extends to the
// end of the line.
const Unbounded = -1

// ErrMalformedHeader is returned when a header line yields no column names.
var ErrMalformedHeader = errors.New("malformed header")

// Column describes one header label.
type Column struct {
	Name string
	// Start is the rune offset of the label in the header line.
	Start int
	// Anchor is the rune offset where the search for the boundary between
	// this column and the next one begins: the single separator position
	// just before the next label. Unbounded for the last column.
	Anchor int
}

// HeaderSpec is the parsed header line. It is immutable once built and is
// safe to share between goroutines.
type HeaderSpec struct {
	Columns []Column
}

// AnalyzeHeader splits a header line into column names and computes the
// per-column anchors used by the sparse parser.
func AnalyzeHeader(line string) (HeaderSpec, error) {
	var cols []Column
	for _, tok := range tokens([]rune(line)) {
		cols = append(cols, Column{Name: tok.text, Start: tok.start, Anchor: Unbounded})
	}
	if len(cols) == 0 {
		return HeaderSpec{}, fmt.Errorf("%w: no column names in %q", ErrMalformedHeader, line)
	}
	for i := 0; i < len(cols)-1; i++ {
		cols[i].Anchor = cols[i+1].Start - 1
	}
	return HeaderSpec{Columns: cols}, nil
}

// Names returns the column names in header order.
func (h HeaderSpec) Names() []string {
	names := make([]string, len(h.Columns))
	for i, c := range h.Columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of columns.
func (h HeaderSpec) Len() int {
	return len(h.Columns)
}

// Anchors returns the anchors of every column except the last.
func (h HeaderSpec) Anchors() []int {
	if len(h.Columns) == 0 {
		return nil
	}
	anchors := make([]int, len(h.Columns)-1)
	for i := range anchors {
		anchors[i] = h.Columns[i].Anchor
	}
	return anchors
}
