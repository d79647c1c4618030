// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns the encoder every JSON output shares. Names taken from
// annotation files may contain '<' or '&', so HTML escaping is off. indent
// selects the two-space layout of the json format; jsonl keeps one value per
// line.
func NewEncoder(w io.Writer, indent bool) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	return NewEncoder(w, true).Encode(v)
}
