// Package command — systemctl consumer.
// Parses the unit listing printed by `systemctl -a`. The listing is
// followed by a legend starting with "LOAD   = ", which ends the table.
package command

import (
	"strings"

	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// systemctlLegend marks the first line after the unit table.
const systemctlLegend = "LOAD   = "

func parseSystemctl(lines []string, opts ...table.Option) ([]table.Record, error) {
	if len(lines) == 0 {
		return nil, table.ErrMalformedHeader
	}
	spec, err := table.AnalyzeHeader(strings.ToLower(lines[0]))
	if err != nil {
		return nil, err
	}

	rows := lines[1:]
	for i, row := range rows {
		if strings.Contains(row, systemctlLegend) {
			rows = rows[:i]
			break
		}
	}
	return table.SimpleParseRows(spec, rows, opts...), nil
}
