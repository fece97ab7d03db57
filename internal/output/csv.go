// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"sigrank/internal/engine"
)

// FormatRowCSV returns the five tabular columns for s.
func FormatRowCSV(s engine.Scored) []string {
	return []string{
		strconv.Itoa(s.Index),
		fmt.Sprintf(MetricFormat, s.Distance),
		strconv.Itoa(s.Length()),
		s.Description,
		s.Sequence,
	}
}

// StreamCSV writes the header row, then one row per hit as it arrives.
func StreamCSV(w io.Writer, in <-chan engine.Scored) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for s := range in {
		if err := cw.Write(FormatRowCSV(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
