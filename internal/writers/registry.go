// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// SliceWriters maps an output format to its handler. Handlers register in
// init() blocks.
var SliceWriters = map[string]func(w io.Writer, data interface{}) error{}

// RegisterSlice adds a handler (idempotent last-wins).
func RegisterSlice(format string, fn func(io.Writer, interface{}) error) { SliceWriters[format] = fn }

// WriteSlices dispatches payload to the handler registered for format.
func WriteSlices(format string, w io.Writer, payload interface{}) error {
	fn, ok := SliceWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Registered lists the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(SliceWriters))
	for k := range SliceWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
