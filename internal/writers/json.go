package writers

import (
	"encoding/json"
	"io"

	"seguid/pkg/api"
)

// writeJSON buffers every result and writes one indented array.
func writeJSON(w io.Writer, in <-chan api.ChecksumV1, o Options) error {
	out := []api.ChecksumV1{}
	for r := range in {
		if !o.Message {
			r.Message = ""
		}
		out = append(out, r)
	}
	return EncodePretty(w, out)
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
