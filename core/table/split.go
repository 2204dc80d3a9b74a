package table

import (
	"strings"
	"unicode"
)

// token is a whitespace-delimited word and its rune offset.
type token struct {
	text  string
	start int
}

// tokens splits runes on runs of whitespace.
func tokens(rs []rune) []token {
	var out []token
	start := -1
	for i, r := range rs {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, token{text: string(rs[start:i]), start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{text: string(rs[start:]), start: start})
	}
	return out
}

// splitN trims s and splits it on runs of whitespace into at most n parts.
// The last part keeps the remainder of the line, internal whitespace
// included.
func splitN(s string, n int) []string {
	s = strings.TrimSpace(s)
	if s == "" || n <= 0 {
		return nil
	}
	var parts []string
	for len(parts) < n-1 {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}
		parts = append(parts, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	return append(parts, s)
}

// isGap reports whether r separates columns in the backward boundary scan.
// The set is the ASCII whitespace class, matching what terminals pad with.
func isGap(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
