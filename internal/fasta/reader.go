// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one archive entry. Header keeps the leading '>'.
type Record struct {
	Header string
	Seq    string
}

// Reader yields records one at a time from an underlying stream.
//
// Lines are trimmed and blank lines dropped. A record is only produced once it
// has both a header and at least one body line, so text before the first
// header and headers without a body are skipped.
type Reader struct {
	sc     *bufio.Scanner
	header string
	body   strings.Builder
	done   bool
}

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// NewReader wraps r. The caller keeps ownership of r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// Next returns the next complete record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			rec, ok := r.take()
			r.header = line
			if ok {
				return rec, nil
			}
			continue
		}
		if r.header == "" {
			continue
		}
		r.body.WriteString(line)
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	if rec, ok := r.take(); ok {
		return rec, nil
	}
	return Record{}, io.EOF
}

// take hands out the pending record (if complete) and resets the body.
func (r *Reader) take() (Record, bool) {
	defer r.body.Reset()
	if r.header == "" || r.body.Len() == 0 {
		return Record{}, false
	}
	return Record{Header: r.header, Seq: r.body.String()}, true
}
