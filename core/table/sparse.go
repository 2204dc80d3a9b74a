// Package table — sparse table parser.
// Cells may be blank or contain spaces, as long as each cell's text stays
// aligned under its header label. Column boundaries are found per row by
// starting at the header anchor and scanning left to the nearest gap.
package table

import (
	"sort"
	"strings"
)

// Boundaries returns, for every column but the last, the rune offset in
// line where that column ends. The offset is the position the sentinel
// delimiter occupies; the rune found there is consumed by the cut.
//
// Columns are resolved right to left. A position already claimed by a
// column to the right counts as non-whitespace for the columns to its left.
// An anchor at or past the end of line resolves to len(line), so short
// lines leave their trailing columns empty.
func Boundaries(spec HeaderSpec, line string) []int {
	bounds, _ := boundaries(spec, []rune(line))
	return bounds
}

// boundaries also reports, per column, whether the scan drifted to the
// start of the line without finding a gap.
func boundaries(spec HeaderSpec, rs []rune) ([]int, []bool) {
	k := spec.Len()
	if k < 2 {
		return nil, nil
	}
	n := len(rs)
	bounds := make([]int, k-1)
	drifted := make([]bool, k-1)
	claimed := make([]bool, n)

	for i := k - 2; i >= 0; i-- {
		pos := spec.Columns[i].Anchor
		if pos >= n {
			bounds[i] = n
			continue
		}
		for pos > 0 && (claimed[pos] || !isGap(rs[pos])) {
			pos--
		}
		if pos == 0 && (claimed[0] || !isGap(rs[0])) {
			drifted[i] = true
		}
		bounds[i] = pos
		claimed[pos] = true
	}
	return bounds, drifted
}

// SplitAtBoundaries cuts line into len(names) fields.
//
// Each boundary consumes the rune at its offset. Runes equal to delim that
// already occur in line are cut points as well, so a delimiter that
// collides with the data corrupts the row; pick another one with
// WithDelimiter. At most len(names)-1 cuts are made, leftmost first;
// boundaries past the last cut are left in the final field as delim.
// Fields are whitespace-trimmed, empty fields are null, and missing
// trailing fields are filled with nulls.
func SplitAtBoundaries(names []string, line string, bounds []int, delim rune) Record {
	rs := []rune(line)
	n := len(rs)
	k := len(names)

	marked := make(map[int]bool, len(bounds))
	cuts := make([]int, 0, len(bounds))
	seen := make(map[int]bool, len(bounds))
	for _, b := range bounds {
		if b > n {
			b = n
		}
		marked[b] = true
		if !seen[b] {
			seen[b] = true
			cuts = append(cuts, b)
		}
	}
	for i, r := range rs {
		if r == delim && !seen[i] {
			seen[i] = true
			cuts = append(cuts, i)
		}
	}
	sort.Ints(cuts)
	if k > 0 && len(cuts) > k-1 {
		cuts = cuts[:k-1]
	}

	parts := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		parts = append(parts, string(rs[prev:c]))
		prev = c + 1
	}
	// Boundaries past the last honored cut stay in the text as delimiters.
	var tail strings.Builder
	for j := prev; j < n; j++ {
		if marked[j] {
			tail.WriteRune(delim)
			continue
		}
		tail.WriteRune(rs[j])
	}
	if prev <= n && marked[n] {
		tail.WriteRune(delim)
	}
	parts = append(parts, tail.String())

	rec := make(Record, k)
	for i, name := range names {
		rec[i] = Field{Name: name, Null: true}
		if i >= len(parts) {
			continue
		}
		if v := strings.TrimSpace(parts[i]); v != "" {
			rec[i] = Field{Name: name, Value: v}
		}
	}
	return rec
}

// SparseParse parses lines[0] as the header and every following line as a
// data row. Every record has exactly one field per header column.
func SparseParse(lines []string, opts ...Option) ([]Record, error) {
	if len(lines) == 0 {
		return nil, ErrMalformedHeader
	}
	spec, err := AnalyzeHeader(lines[0])
	if err != nil {
		return nil, err
	}
	return SparseParseRows(spec, lines[1:], opts...), nil
}

// SparseParseRows parses data rows against an already analyzed header.
func SparseParseRows(spec HeaderSpec, rows []string, opts ...Option) []Record {
	o := buildOptions(opts)
	names := spec.Names()
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		bounds, drifted := boundaries(spec, []rune(row))
		for col, d := range drifted {
			if d {
				o.report(Irregularity{Kind: KindAlignmentDrift, Line: i, Column: names[col]})
			}
		}
		out = append(out, SplitAtBoundaries(names, row, bounds, o.delim))
	}
	return out
}
