// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"sigrank/internal/appcore"
	"sigrank/internal/cli"
	"sigrank/internal/cmdutil"
	"sigrank/internal/config"
	"sigrank/internal/engine"
	"sigrank/internal/prompt"
	"sigrank/internal/version"
	"sigrank/internal/writers"
)

// flush reports write errors on stdout, treating a closed pipe as success.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sigrank")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		outw := bufio.NewWriter(stdout)
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		outw := bufio.NewWriter(stdout)
		_, _ = fmt.Fprintf(outw, "sigrank version %s\n", version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	opts.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	// Prompt answers and the archive cannot share one stdin.
	if cfg.Archive == "-" && !opts.Set["query"] {
		_, _ = fmt.Fprintln(stderr, "--query is required when the archive is read from stdin")
		return appcore.ExitUsage
	}

	logger, closeLog, err := cmdutil.NewLogger(stderr, cmdutil.LogOptions{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Quiet: opts.Quiet,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	defer func() { _ = closeLog() }()

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)

	// Query and limit: flags first, then the config file, then the terminal.
	pr := prompt.New(stdin, stderr)
	query := prompt.NormalizeQuery(opts.Query)
	prompted := false
	if !opts.Set["query"] {
		prompted = true
		if query, err = pr.Query(); err != nil {
			logger.Error("cannot read query", "err", err)
			return appcore.ExitRuntime
		}
	}
	if query == "" {
		_, _ = fmt.Fprintln(stderr, "empty query sequence")
		return appcore.ExitUsage
	}

	topN := cfg.Top
	switch {
	case opts.Set["top"]:
		n, ok := engine.ParseLimit(opts.Top)
		if !ok {
			logger.Info("invalid limit, using default: all records", "top", opts.Top)
		}
		topN = n
	case prompted && cfg.Top <= 0:
		n, ok, err := pr.Limit()
		if err != nil {
			logger.Error("cannot read limit", "err", err)
			return appcore.ExitRuntime
		}
		if !ok {
			logger.Info("using default: all records")
		}
		topN = n
	}

	coreOpts := appcore.Options{
		Archive:  cfg.Archive,
		Output:   cfg.Output,
		Query:    query,
		TopN:     topN,
		Threads:  cfg.Threads,
		Progress: cfg.Progress,
	}
	logger.Debug("resolved options", "archive", cfg.Archive, "output", cfg.Output,
		"format", cfg.ResolveFormat(), "top", topN, "threads", cfg.Threads)

	wf := appcore.NewResultWriterFactory(cfg.ResolveFormat(), appcore.MetaFor(runID, coreOpts))
	return appcore.Run(parent, stdout, stderr, logger, coreOpts, wf)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
