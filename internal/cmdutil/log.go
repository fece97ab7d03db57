// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LogOptions selects where and how much to log.
type LogOptions struct {
	Level string // debug | info | warn | warning | error ("" = info)
	File  string // optional append-only copy of the log
	Quiet bool   // errors only, overrides Level
}

// ParseLevel maps a config/flag level name to a log level.
// Unknown names fall back to info and report ok=false.
func ParseLevel(s string) (lvl log.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	default:
		return log.InfoLevel, false
	}
}

// NewLogger builds the run logger on stderr, tee'd to o.File when set.
// The returned close func releases the log file and is never nil.
func NewLogger(stderr io.Writer, o LogOptions) (*log.Logger, func() error, error) {
	out := stderr
	closeFn := func() error { return nil }
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		// write to both stderr and file so interactive runs still show logs
		out = io.MultiWriter(stderr, f)
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "sigrank",
	})
	lvl, ok := ParseLevel(o.Level)
	logger.SetLevel(lvl)
	if !ok {
		logger.Warn("unknown log level, defaulting to info", "provided", o.Level)
	}
	if o.Quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger, closeFn, nil
}
