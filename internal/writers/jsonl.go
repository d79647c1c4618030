// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"ngsio/internal/jsonlutil"
	"ngsio/pkg/api"
)

// StartSliceJSONLWriter streams each record as one JSON line (v1).
func StartSliceJSONLWriter(out io.Writer, bufSize int) (chan<- api.SliceV1, <-chan error) {
	return jsonlutil.Start[api.SliceV1](out, bufSize,
		func(enc *json.Encoder, s api.SliceV1) error {
			return enc.Encode(s)
		},
		IsBrokenPipe,
	)
}
