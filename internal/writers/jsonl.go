// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"sigrank/internal/engine"
	"sigrank/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL streams to avoid per-run mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StreamJSONL writes each hit as one api.HitV1 JSON line, ranks counted from 1.
// Broken pipes on flush are not reported.
func StreamJSONL(out io.Writer, in <-chan engine.Scored) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	rank := 0
	for s := range in {
		rank++
		if err := enc.Encode(output.ToAPIHit(rank, s)); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
