// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sigrank/internal/cmdutil"
	"sigrank/internal/engine"
	"sigrank/internal/fasta"
	"sigrank/internal/output"
	"sigrank/internal/pipeline"
	"sigrank/internal/progress"
	"sigrank/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Archive string
	Output  string
	Query   string
	TopN    int // <= 0 keeps all

	Threads  int
	Progress bool
}

// Run reads the whole archive, scores every record against the query, orders
// the hits, and publishes them through wf. Output only becomes visible when
// every step succeeded.
func Run(parent context.Context, stdout, stderr io.Writer, logger *log.Logger, o Options, wf ResultWriterFactory) int {
	ctx, span := cmdutil.StartSpan(parent, "sigrank.run",
		attribute.String("archive", o.Archive),
		attribute.Int("top_n", o.TopN),
	)
	defer span.End()

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	sink, err := writers.CreateSink(o.Output, stdout)
	if err != nil {
		logger.Error("cannot create output", "path", o.Output, "err", err)
		return ExitRuntime
	}
	defer sink.Abort()

	var records []fasta.Record
	err = cmdutil.Stage(ctx, logger, "read", func(ctx context.Context, sp trace.Span) error {
		var err error
		records, err = fasta.ReadAllPath(ctx, o.Archive)
		sp.SetAttributes(attribute.Int("records", len(records)))
		return err
	})
	if err != nil {
		return fail(logger, "cannot read archive", err, "path", o.Archive)
	}
	logger.Info("loaded sequences for comparison", "records", len(records), "path", o.Archive)
	wf.Meta.Total = len(records)

	eng := engine.New(o.Query)
	if eng.QueryLen() == 0 {
		logger.Warn("query has no recognized amino-acid symbols; ranking by length only", "query", o.Query)
	}

	var hits []engine.Scored
	err = cmdutil.Stage(ctx, logger, "score", func(ctx context.Context, sp trace.Span) error {
		bar := progress.New(stderr, len(records), "Scoring sequences", o.Progress)
		defer bar.Finish(stderr)
		var err error
		hits, err = pipeline.ScoreAll(ctx, pipeline.Config{Threads: thr}, records, eng, bar.Tick)
		sp.SetAttributes(attribute.Int("threads", thr))
		return err
	})
	if err != nil {
		return fail(logger, "scoring failed", err)
	}

	logger.Info("sorting results")
	_ = cmdutil.Stage(ctx, logger, "order", func(context.Context, trace.Span) error {
		hits = engine.Order(hits, o.TopN)
		return nil
	})

	err = cmdutil.Stage(ctx, logger, "write", func(ctx context.Context, sp trace.Span) error {
		sp.SetAttributes(attribute.String("format", wf.Format), attribute.Int("returned", len(hits)))
		in, done := wf.Start(sink, thr*4)
		var sendErr error
	send:
		for _, h := range hits {
			select {
			case in <- h:
			case <-ctx.Done():
				sendErr = ctx.Err()
				break send
			}
		}
		close(in)
		if werr := <-done; werr != nil && !writers.IsBrokenPipe(werr) {
			return werr
		}
		if sendErr != nil {
			return sendErr
		}
		return sink.Commit()
	})
	if err != nil {
		return fail(logger, "cannot write results", err, "path", o.Output)
	}

	logger.Info("results saved", "path", o.Output, "format", wf.Format, "returned", len(hits), "total", len(records))
	return ExitOK
}

func fail(logger *log.Logger, msg string, err error, kv ...any) int {
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted; no output written")
		return ExitCanceled
	}
	logger.Error(msg, append(kv, "err", err)...)
	return ExitRuntime
}

// MetaFor assembles the run metadata reported by JSON outputs.
func MetaFor(runID string, o Options) output.Meta {
	return output.Meta{RunID: runID, Query: o.Query, Archive: o.Archive}
}
