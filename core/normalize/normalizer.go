// Package normalize implements the Preprocessor interface.
// It turns raw command output into the clean line sequence the table
// parsers expect, and prepares header lines so labels become usable keys.
package normalize

import (
	"strings"
	"unicode"
)

// LineNormalizer splits text into non-blank, printable lines.
type LineNormalizer struct {
	// ASCIIOnly drops every rune above 0x7F, the way tools that only
	// ever print ASCII tables are handled.
	ASCIIOnly bool
}

// New creates a LineNormalizer.
func New(asciiOnly bool) *LineNormalizer {
	return &LineNormalizer{ASCIIOnly: asciiOnly}
}

// Lines splits text on \n, \r\n and \r, strips non-printable characters and
// drops lines that are blank afterwards. Horizontal positions of printable
// characters are otherwise preserved.
func (n *LineNormalizer) Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := n.clean(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// clean removes non-printable runes. Tabs survive since they separate
// columns in some tools.
func (n *LineNormalizer) clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if n.ASCIIOnly && r > unicode.MaxASCII {
			return -1
		}
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeHeader lowercases a header line and joins each multi-word label
// in joins with underscores, e.g. "Mounted on" becomes "mounted_on". Every
// space is replaced in place, so label positions do not move.
func NormalizeHeader(line string, joins ...string) string {
	line = strings.ToLower(line)
	for _, label := range joins {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		line = strings.ReplaceAll(line, label, strings.Map(underscore, label))
	}
	return line
}

func underscore(r rune) rune {
	if unicode.IsSpace(r) {
		return '_'
	}
	return r
}
