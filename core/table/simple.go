// Package table — simple table parser.
// Every cell is a single word except the last, which absorbs the rest of
// the line. Blank cells are not supported: they shift later values left.
package table

// ParseSimpleLine pairs names with the whitespace-delimited tokens of line.
// When the line has fewer tokens than names, the record is shorter; no
// null fill is performed.
func ParseSimpleLine(names []string, line string) Record {
	parts := splitN(line, len(names))
	rec := make(Record, len(parts))
	for i, p := range parts {
		rec[i] = Field{Name: names[i], Value: p}
	}
	return rec
}

// SimpleParse parses lines[0] as the header and every following line as a
// data row.
func SimpleParse(lines []string, opts ...Option) ([]Record, error) {
	if len(lines) == 0 {
		return nil, ErrMalformedHeader
	}
	spec, err := AnalyzeHeader(lines[0])
	if err != nil {
		return nil, err
	}
	return SimpleParseRows(spec, lines[1:], opts...), nil
}

// SimpleParseRows parses data rows against an already analyzed header.
func SimpleParseRows(spec HeaderSpec, rows []string, opts ...Option) []Record {
	o := buildOptions(opts)
	names := spec.Names()
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec := ParseSimpleLine(names, row)
		if len(rec) < len(names) {
			o.report(Irregularity{Kind: KindInsufficientColumns, Line: i, Column: names[len(rec)]})
		}
		out = append(out, rec)
	}
	return out
}
