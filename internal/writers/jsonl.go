package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"seguid/pkg/api"
)

// Buffered writers are reused across JSONL streams.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// writeJSONL streams each result as one JSON line (v1).
func writeJSONL(w io.Writer, in <-chan api.ChecksumV1, o Options) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(w)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for r := range in {
		if !o.Message {
			r.Message = ""
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return bw.Flush()
}
