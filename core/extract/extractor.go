// Package extract implements the Extractor interface.
// Command output published on web pages (docs, runbooks, CI logs) lives in
// <pre> blocks. The extractor finds that block so the table engine sees
// the same text a terminal would have shown.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoPreformatted is returned when a page has no usable <pre> block.
var ErrNoPreformatted = errors.New("no preformatted text found in HTML")

// PreExtractor pulls preformatted text out of an HTML page.
type PreExtractor struct {
	// Selector picks the block; the first non-empty match wins.
	Selector string
}

// New creates a PreExtractor. An empty selector defaults to "pre".
func New(selector string) *PreExtractor {
	if selector == "" {
		selector = "pre"
	}
	return &PreExtractor{Selector: selector}
}

// Extract returns the text content of the first non-empty block matching
// the selector. Markup inside the block (spans used for coloring) is
// dropped while its text, and therefore the column alignment, is kept.
func (e *PreExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var text string
	doc.Find(e.Selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := s.Text(); strings.TrimSpace(t) != "" {
			text = t
			return false
		}
		return true
	})

	if text == "" {
		return "", fmt.Errorf("%w (selector %q)", ErrNoPreformatted, e.Selector)
	}
	return text, nil
}
