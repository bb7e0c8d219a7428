package observability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
	"github.com/Sumatoshi-tech/algo/pkg/observability"
)

var errSortFailed = errors.New("sort failed")

func setupTestMeter(t *testing.T) (*observability.AlgoMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	am, err := observability.NewAlgoMetrics(mp.Meter("test"))
	require.NoError(t, err)

	return am, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for idx := range rm.ScopeMetrics {
		for midx := range rm.ScopeMetrics[idx].Metrics {
			if rm.ScopeMetrics[idx].Metrics[midx].Name == name {
				return &rm.ScopeMetrics[idx].Metrics[midx]
			}
		}
	}

	return nil
}

// sumByAttr returns the counter value for the data point carrying key=value.
func sumByAttr(t *testing.T, m *metricdata.Metrics, key, value string) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "%s is not an int64 sum", m.Name)

	for _, dp := range sum.DataPoints {
		if got, found := dp.Attributes.Value(attribute.Key(key)); found && got.AsString() == value {
			return dp.Value
		}
	}

	return 0
}

func TestAlgoMetrics_RecordOperation(t *testing.T) {
	t.Parallel()

	am, reader := setupTestMeter(t)
	ctx := context.Background()

	am.RecordOperation(ctx, "sort", nil, 10*time.Millisecond)
	am.RecordOperation(ctx, "sort", errSortFailed, time.Millisecond)
	am.RecordOperation(ctx, "sort", nil, time.Millisecond)

	rm := collectMetrics(t, reader)

	total := findMetric(rm, "algo.operations.total")
	require.NotNil(t, total, "algo.operations.total metric not found")
	assert.Equal(t, int64(2), sumByAttr(t, total, "status", observability.StatusOK))
	assert.Equal(t, int64(1), sumByAttr(t, total, "status", observability.StatusError))

	duration := findMetric(rm, "algo.operation.duration.seconds")
	require.NotNil(t, duration, "algo.operation.duration.seconds metric not found")
}

func TestAlgoMetrics_RecordCounts(t *testing.T) {
	t.Parallel()

	am, reader := setupTestMeter(t)

	am.RecordCounts(context.Background(), "bubble", elem.Counts{Compares: 12, Swaps: 5, Copies: 3})

	rm := collectMetrics(t, reader)

	for name, want := range map[string]int64{
		"algo.comparisons.total": 12,
		"algo.swaps.total":       5,
		"algo.copies.total":      3,
	} {
		m := findMetric(rm, name)
		require.NotNil(t, m, "%s metric not found", name)
		assert.Equal(t, want, sumByAttr(t, m, "op", "bubble"), name)
	}
}
