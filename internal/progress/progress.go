// Package progress shows how many records have been scored.
package progress

import (
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v2"
)

// Bar is safe for concurrent Tick calls from scoring workers. A disabled Bar
// only counts.
type Bar struct {
	mu    sync.Mutex
	bar   *progressbar.ProgressBar
	count int
}

// New returns a bar over total items rendered to w. With enabled=false, or
// nothing to do, nothing is drawn.
func New(w io.Writer, total int, desc string, enabled bool) *Bar {
	b := &Bar{}
	if !enabled || total <= 0 {
		return b
	}
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return b
}

// Tick records one finished item.
func (b *Bar) Tick() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count++
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

// Count is the number of ticks so far.
func (b *Bar) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Finish draws the final state and ends the line.
func (b *Bar) Finish(w io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	_, _ = io.WriteString(w, "\n")
	b.bar = nil
}
