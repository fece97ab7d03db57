// internal/engine/engine.go
package engine

import (
	"strings"

	"sigrank/internal/fasta"
	"sigrank/internal/sigvec"
)

// Engine holds the encoded query. It is read-only after New and safe to share
// between goroutines.
type Engine struct {
	query sigvec.Signal
}

func New(query string) *Engine { return &Engine{query: sigvec.Encode(query)} }

// QueryLen is the number of recognized symbols in the query.
func (e *Engine) QueryLen() int { return len(e.query) }

// Score computes the distance of rec to the query.
func (e *Engine) Score(index int, rec fasta.Record) Scored {
	return Scored{
		Index:       index,
		Distance:    sigvec.Distance(e.query, sigvec.Encode(rec.Seq)),
		Sequence:    rec.Seq,
		Description: Describe(rec.Header),
	}
}

// Describe drops the first whitespace-delimited token (the accession) of a
// header and joins the rest with single spaces.
func Describe(header string) string {
	f := strings.Fields(header)
	if len(f) < 2 {
		return ""
	}
	return strings.Join(f[1:], " ")
}

// Rank scores every record serially and orders the result.
func Rank(query string, records []fasta.Record, topN int) Result {
	e := New(query)
	hits := make([]Scored, len(records))
	for i, rec := range records {
		hits[i] = e.Score(i, rec)
	}
	return Result{Total: len(hits), Hits: Order(hits, topN)}
}
