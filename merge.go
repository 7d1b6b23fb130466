package nprop

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-json"
)

// Merge applies patch to doc with RFC 7386 merge-patch semantics: null
// patch values delete fields, nested Mappings merge recursively, and
// everything else replaces. The result is a new document; doc is left
// untouched. Numbers come back as float64 through the JSON round trip.
func Merge(doc, patch map[string]any) (map[string]any, error) {
	docBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(docBytes, patchBytes)
	if err != nil {
		return nil, err
	}
	var res map[string]any
	if err := json.Unmarshal(merged, &res); err != nil {
		return nil, err
	}
	return res, nil
}
