package nprop

import (
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// FromJSON builds a document tree (nested map[string]any / []any) from
// JSON bytes.
func FromJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// FromYAML builds a document tree from YAML bytes.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
