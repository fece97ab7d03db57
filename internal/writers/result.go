// internal/writers/result.go
package writers

import (
	"io"

	"sigrank/internal/engine"
	"sigrank/internal/output"
)

// ResultArgs is what every registered handler receives. Hits arrive on In
// already ranked; the handler must drain In.
type ResultArgs struct {
	Meta output.Meta
	In   <-chan engine.Scored
}

func drain(ch <-chan engine.Scored) []engine.Scored {
	list := make([]engine.Scored, 0, 128)
	for s := range ch {
		list = append(list, s)
	}
	return list
}

func init() {
	RegisterResult(output.FormatCSV, func(w io.Writer, args ResultArgs) error {
		return output.StreamCSV(w, args.In)
	})

	RegisterResult(output.FormatText, func(w io.Writer, args ResultArgs) error {
		return output.StreamText(w, args.In)
	})

	// JSON needs the returned count up front, so buffer.
	RegisterResult(output.FormatJSON, func(w io.Writer, args ResultArgs) error {
		return output.WriteJSON(w, args.Meta, drain(args.In))
	})

	RegisterResult(output.FormatJSONL, func(w io.Writer, args ResultArgs) error {
		return StreamJSONL(w, args.In)
	})
}

// StartResultWriter spins up a writer goroutine for format. Send ranked hits
// on the returned channel, close it, then read exactly one value from the
// error channel.
func StartResultWriter(out io.Writer, format string, meta output.Meta, bufSize int) (chan<- engine.Scored, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Scored, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteResult(format, out, ResultArgs{Meta: meta, In: in})
		// keep the sender from blocking if the handler bailed early
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
