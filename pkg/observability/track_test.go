package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/algo/pkg/observability"
)

func TestProviders_Track(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	am, reader := setupTestMeter(t)

	providers := observability.Providers{Tracer: tp.Tracer("test"), Metrics: am}

	err := providers.Track(context.Background(), "search", func(ctx context.Context) error {
		op, ok := observability.OperationFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "search", op)
		assert.True(t, trace.SpanContextFromContext(ctx).IsValid())

		return nil
	})
	require.NoError(t, err)

	err = providers.Track(context.Background(), "sort", func(context.Context) error {
		return errSortFailed
	})
	require.ErrorIs(t, err, errSortFailed)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "algo.search", spans[0].Name)
	assert.Equal(t, "algo.sort", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)

	total := findMetric(collectMetrics(t, reader), "algo.operations.total")
	require.NotNil(t, total)
	assert.Equal(t, int64(1), sumByAttr(t, total, "status", observability.StatusError))
}

func TestProviders_TrackWithoutInstruments(t *testing.T) {
	t.Parallel()

	called := false

	err := observability.Providers{}.Track(context.Background(), "list", func(context.Context) error {
		called = true

		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

