// internal/pipeline/scorer.go
package pipeline

import (
	"sigrank/internal/engine"
	"sigrank/internal/fasta"
)

// Scorer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Scorer interface {
	Score(index int, rec fasta.Record) engine.Scored
}
