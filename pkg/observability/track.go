package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// spanPrefix namespaces operation spans.
const spanPrefix = "algo."

// Track runs fn inside a span named after op and records its outcome and
// duration. The context passed to fn is tagged with op for logging. A nil
// Tracer or Metrics is skipped.
func (p Providers) Track(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	start := time.Now()
	ctx = ContextWithOperation(ctx, op)

	var span trace.Span
	if p.Tracer != nil {
		ctx, span = p.Tracer.Start(ctx, spanPrefix+op)
		defer span.End()
	}

	err := fn(ctx)

	if span != nil && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if p.Metrics != nil {
		p.Metrics.RecordOperation(ctx, op, err, time.Since(start))
	}

	return err
}
