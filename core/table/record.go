// Package table — record model.
// A Record is an ordered set of fields keyed by header column name.
// Order always follows the header; a field may be present but null.
package table

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field is a single named cell. Null marks a column that is present in the
// record but has no value (a blank cell in a sparse table).
type Field struct {
	Name  string
	Value string
	Null  bool
}

// Record is one parsed data line, in header column order.
type Record []Field

// Get returns the value for name. ok is false when the column is absent
// or null.
func (r Record) Get(name string) (value string, ok bool) {
	for _, f := range r {
		if f.Name == name {
			if f.Null {
				return "", false
			}
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether the column is present in the record, null or not.
func (r Record) Has(name string) bool {
	for _, f := range r {
		if f.Name == name {
			return true
		}
	}
	return false
}

// IsNull reports whether the column is present with a null value.
func (r Record) IsNull(name string) bool {
	for _, f := range r {
		if f.Name == name {
			return f.Null
		}
	}
	return false
}

// Names returns the record's keys in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Map returns the record as an unordered map. Null fields map to nil.
func (r Record) Map() map[string]*string {
	m := make(map[string]*string, len(r))
	for _, f := range r {
		if f.Null {
			m[f.Name] = nil
			continue
		}
		v := f.Value
		m[f.Name] = &v
	}
	return m
}

// MarshalJSON encodes the record as a JSON object with keys in header order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if f.Null {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshaling value of %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping with keys in header order.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value}
		if f.Null {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
