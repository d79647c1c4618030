// internal/output/json.go
package output

import (
	"io"

	"ngsio/internal/jsonutil"
	"ngsio/pkg/api"
)

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
// A nil list is written as [] rather than null.
func WriteJSON(w io.Writer, list []api.SliceV1) error {
	if list == nil {
		list = []api.SliceV1{}
	}
	return jsonutil.EncodePretty(w, list)
}

// WriteChromosomesJSON writes the index table as a JSON array.
func WriteChromosomesJSON(w io.Writer, list []api.ChromosomeV1) error {
	if list == nil {
		list = []api.ChromosomeV1{}
	}
	return jsonutil.EncodePretty(w, list)
}
