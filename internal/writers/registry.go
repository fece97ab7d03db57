// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// ResultWriters maps a format name to its handler. Handlers register in init().
var ResultWriters = map[string]func(w io.Writer, args ResultArgs) error{}

// RegisterResult adds or replaces (last wins) the handler for format.
func RegisterResult(format string, fn func(io.Writer, ResultArgs) error) { ResultWriters[format] = fn }

// WriteResult dispatches to the handler registered for format.
func WriteResult(format string, w io.Writer, args ResultArgs) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, args)
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := ResultWriters[format]
	return ok
}

// Registered returns the registered format names, sorted.
func Registered() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
