// pkg/api/results_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one ranked record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Rank        int     `json:"rank"` // 1-based position in the ranking
	Index       int     `json:"index"`
	Metric      float64 `json:"metric"`
	Length      int     `json:"length"`
	Description string  `json:"description"`
	Sequence    string  `json:"sequence"`
}

// ReportV1 is the single-document JSON report.
type ReportV1 struct {
	RunID    string  `json:"run_id,omitempty"`
	Query    string  `json:"query"`
	Archive  string  `json:"archive,omitempty"`
	Total    int     `json:"total"`
	Returned int     `json:"returned"`
	Results  []HitV1 `json:"results"`
}
