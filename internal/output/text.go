// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"sigrank/internal/engine"
)

// FormatBlock renders one hit as a labeled summary line, the raw sequence,
// and a blank separator line.
func FormatBlock(s engine.Scored) string {
	return fmt.Sprintf("Index: %d, Metric: "+MetricFormat+", Length: %d, Description: %s\n%s\n\n",
		s.Index, s.Distance, s.Length(), s.Description, s.Sequence)
}

// StreamText writes one block per hit as it arrives.
func StreamText(w io.Writer, in <-chan engine.Scored) error {
	for s := range in {
		if _, err := io.WriteString(w, FormatBlock(s)); err != nil {
			return err
		}
	}
	return nil
}
