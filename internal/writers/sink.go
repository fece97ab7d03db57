// internal/writers/sink.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Sink is a buffered output destination that only becomes visible on Commit.
// For files it writes to a temp file next to the target and renames it into
// place; "-" writes straight to the given stdout.
type Sink struct {
	*bufio.Writer
	path string
	tmp  *os.File
	done bool
}

// CreateSink prepares a sink for path. stdout is used when path is "-".
func CreateSink(path string, stdout io.Writer) (*Sink, error) {
	if path == "-" {
		return &Sink{Writer: bufio.NewWriter(stdout), path: path}, nil
	}
	tmp, err := createTemp(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &Sink{Writer: bufio.NewWriterSize(tmp, 256<<10), path: path, tmp: tmp}, nil
}

// createTemp opens a hidden sibling of path with the mode os.Create would
// use (0666 less umask), so the renamed file looks like a plainly created one.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	for range 10000 {
		name := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if os.IsExist(err) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("create temp for %s: too many collisions", path)
}

// Commit flushes and publishes the output.
func (s *Sink) Commit() error {
	if s.done {
		return nil
	}
	s.done = true
	ferr := s.Flush()
	if s.tmp == nil {
		if IsBrokenPipe(ferr) {
			return nil
		}
		return ferr
	}
	name := s.tmp.Name()
	if cerr := s.tmp.Close(); ferr == nil {
		ferr = cerr
	}
	if ferr != nil {
		_ = os.Remove(name)
		return fmt.Errorf("write output: %w", ferr)
	}
	if err := os.Rename(name, s.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("publish output: %w", err)
	}
	return nil
}

// Abort discards everything written so far. Safe to call after Commit.
func (s *Sink) Abort() {
	if s.done {
		return
	}
	s.done = true
	if s.tmp != nil {
		name := s.tmp.Name()
		_ = s.tmp.Close()
		_ = os.Remove(name)
	}
}
