// Package render — JSON renderer.
// Emits the records as a JSON array, keys in header order and blank cells
// as null. With metadata enabled the array is wrapped in a document object.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/tablepipe/core"
	"github.com/gaurav-prasanna/tablepipe/core/table"
)

// JSONRenderer produces JSON output from records.
type JSONRenderer struct {
	Pretty       bool
	WithMetadata bool
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(pretty, withMetadata bool) *JSONRenderer {
	return &JSONRenderer{Pretty: pretty, WithMetadata: withMetadata}
}

// Render converts records and metadata into JSON.
func (r *JSONRenderer) Render(records []table.Record, meta core.DocumentMetadata) ([]byte, error) {
	if records == nil {
		records = []table.Record{}
	}

	var v interface{} = records
	if r.WithMetadata {
		v = core.Document{Metadata: meta, Records: records}
	}

	var (
		data []byte
		err  error
	)
	if r.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
