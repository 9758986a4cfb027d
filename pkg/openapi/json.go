package openapi

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// MarshalJSON renders spec as indented JSON with sorted keys, so repeated
// generation yields identical bytes.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}
