// Package core defines the pipeline interfaces for tablepipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// FetchResult holds the raw bytes read from a source.
type FetchResult struct {
	Source      string
	StatusCode  int
	ContentType string
	Body        string
}

// DocumentMetadata describes one converted table.
type DocumentMetadata struct {
	Source   string   `json:"source" yaml:"source"`
	Command  string   `json:"command" yaml:"command"`
	Columns  []string `json:"columns" yaml:"columns"`
	Records  int      `json:"records" yaml:"records"`
	ParsedAt string   `json:"parsed_at" yaml:"parsed_at"` // ISO8601
}

// Document is the complete structured output for a single table.
type Document struct {
	Metadata DocumentMetadata `json:"metadata" yaml:"metadata"`
	Records  []table.Record   `json:"records" yaml:"records"`
}

// Fetcher retrieves raw text from a file, stdin or URL.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor pulls preformatted command output out of an HTML page.
type Extractor interface {
	Extract(html string) (string, error)
}

// Preprocessor turns raw text into the clean line sequence the table
// parsers expect: no blank lines, no non-printable characters.
type Preprocessor interface {
	Lines(text string) []string
}

// Parser converts a clean line sequence into records.
type Parser interface {
	Parse(lines []string, opts ...table.Option) ([]table.Record, error)
}

// Renderer converts records (and metadata) into a final output format.
type Renderer interface {
	Render(records []table.Record, meta DocumentMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
