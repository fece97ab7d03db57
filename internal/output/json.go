// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"sigrank/internal/engine"
	"sigrank/pkg/api"
)

// ToAPIHit converts a domain hit at 1-based rank to the stable wire schema (v1).
func ToAPIHit(rank int, s engine.Scored) api.HitV1 {
	return api.HitV1{
		Rank:        rank,
		Index:       s.Index,
		Metric:      s.Distance,
		Length:      s.Length(),
		Description: s.Description,
		Sequence:    s.Sequence,
	}
}

// ToAPIReport wraps ranked hits with run metadata.
func ToAPIReport(meta Meta, list []engine.Scored) api.ReportV1 {
	hits := make([]api.HitV1, 0, len(list))
	for i, s := range list {
		hits = append(hits, ToAPIHit(i+1, s))
	}
	return api.ReportV1{
		RunID:    meta.RunID,
		Query:    meta.Query,
		Archive:  meta.Archive,
		Total:    meta.Total,
		Returned: len(hits),
		Results:  hits,
	}
}

// WriteJSON writes a single pretty-indented v1 report.
func WriteJSON(w io.Writer, meta Meta, list []engine.Scored) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(meta, list))
}
