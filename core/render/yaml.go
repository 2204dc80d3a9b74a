// Package render — YAML renderer.
// Emits the records as a YAML sequence of mappings, keys in header order.
package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/tablepipe/core"
	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// YAMLRenderer produces YAML output from records.
type YAMLRenderer struct {
	WithMetadata bool
}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer(withMetadata bool) *YAMLRenderer {
	return &YAMLRenderer{WithMetadata: withMetadata}
}

// Render converts records and metadata into YAML.
func (r *YAMLRenderer) Render(records []table.Record, meta core.DocumentMetadata) ([]byte, error) {
	if records == nil {
		records = []table.Record{}
	}

	var v interface{} = records
	if r.WithMetadata {
		v = core.Document{Metadata: meta, Records: records}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("flushing YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for YAML output.
func (r *YAMLRenderer) Extension() string {
	return ".yaml"
}
