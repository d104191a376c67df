package py

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a single YAML document from r and converts it into a
// [Value]. Mappings must use string keys; scalars outside the supported
// variant set (booleans, nulls, timestamps) return an error wrapping
// [ErrUnsupported].
func FromYAML(r io.Reader) (Value, error) {
	var doc any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Value{}, fmt.Errorf("decode yaml: %w", err)
	}

	return From(doc)
}

// FromJSON decodes a single JSON document from r and converts it into a
// [Value]. All JSON numbers arrive as floats, per encoding/json.
func FromJSON(r io.Reader) (Value, error) {
	var doc any

	err := json.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}

	return From(doc)
}
