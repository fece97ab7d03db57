// internal/cmdutil/stage.go
package cmdutil

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sigrank"

// StartSpan opens a span on the global tracer provider (a no-op unless the
// embedding program installs one).
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// Stage runs fn inside a span named name and logs its duration at debug level.
// A failing fn marks the span as errored; the error is returned unchanged.
func Stage(ctx context.Context, logger *log.Logger, name string, fn func(context.Context, trace.Span) error) error {
	ctx, span := StartSpan(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	logger.Debug("stage finished", "stage", name, "duration_ms", time.Since(start).Milliseconds(), "ok", err == nil)
	return err
}
