// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"sigrank/internal/engine"
	"sigrank/internal/fasta"
)

// Config controls the scoring pool.
type Config struct {
	Threads int // number of worker goroutines (0 = all CPUs)
}

// ScoreAll scores every record with sc and returns the results indexed by read
// position (out[i] belongs to records[i]). Workers share records and sc
// read-only and each writes only its own slots. tick, if non-nil, is called
// once per scored record from the worker goroutines.
// It returns ctx.Err() if the context ends before all records are scored.
func ScoreAll(
	ctx context.Context,
	cfg Config,
	records []fasta.Record,
	sc Scorer,
	tick func(),
) ([]engine.Scored, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(records) {
		threads = len(records)
	}
	out := make([]engine.Scored, len(records))
	if len(records) == 0 {
		return out, ctx.Err()
	}

	jobs := make(chan int, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = sc.Score(i, records[i])
				if tick != nil {
					tick()
				}
			}
		}()
	}

	// Feed work
feed:
	for i := range records {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
