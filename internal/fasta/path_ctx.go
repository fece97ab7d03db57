// internal/fasta/path_ctx.go
package fasta

import (
	"context"
	"errors"
	"io"
)

// ForEachPath opens path and calls emit for every record in read order.
// Cancellation via ctx is honored between records. Returning a non-nil error
// from emit stops the scan and returns that error.
func ForEachPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := NewReader(rc)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return unreadable(path, err)
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// ReadAllPath materializes every record of path.
func ReadAllPath(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := ForEachPath(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
