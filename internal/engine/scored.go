// internal/engine/scored.go
package engine

// Scored is one archive record placed against the query.
type Scored struct {
	Index       int // 0-based position in archive read order
	Distance    float64
	Sequence    string
	Description string
}

// Length is the raw sequence length, as reported by the writers.
func (s Scored) Length() int { return len(s.Sequence) }

// Result is a ranked run: Total records were scored, Hits holds the kept ones.
type Result struct {
	Total int
	Hits  []Scored
}
