package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

const (
	metricOperationsTotal   = "algo.operations.total"
	metricOperationDuration = "algo.operation.duration.seconds"
	metricComparisonsTotal  = "algo.comparisons.total"
	metricSwapsTotal        = "algo.swaps.total"
	metricCopiesTotal       = "algo.copies.total"

	attrOp     = "op"
	attrStatus = "status"

	// StatusOK marks a successful operation.
	StatusOK = "ok"
	// StatusError marks a failed operation.
	StatusError = "error"
)

// durationBucketBoundaries covers 10us to 60s: single searches up to
// quadratic sorts of large datasets.
var durationBucketBoundaries = []float64{
	0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60,
}

// AlgoMetrics holds the OTel instruments for container operations.
type AlgoMetrics struct {
	operationsTotal   metric.Int64Counter
	operationDuration metric.Float64Histogram
	comparisonsTotal  metric.Int64Counter
	swapsTotal        metric.Int64Counter
	copiesTotal       metric.Int64Counter
}

// NewAlgoMetrics creates the operation instruments from the given meter.
func NewAlgoMetrics(mt metric.Meter) (*AlgoMetrics, error) {
	opsTotal, err := mt.Int64Counter(metricOperationsTotal,
		metric.WithDescription("Total number of container operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOperationsTotal, err)
	}

	opDuration, err := mt.Float64Histogram(metricOperationDuration,
		metric.WithDescription("Container operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOperationDuration, err)
	}

	comparisons, err := mt.Int64Counter(metricComparisonsTotal,
		metric.WithDescription("Element comparisons performed"),
		metric.WithUnit("{comparison}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricComparisonsTotal, err)
	}

	swaps, err := mt.Int64Counter(metricSwapsTotal,
		metric.WithDescription("Element exchanges performed"),
		metric.WithUnit("{swap}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSwapsTotal, err)
	}

	copies, err := mt.Int64Counter(metricCopiesTotal,
		metric.WithDescription("Element copies made"),
		metric.WithUnit("{copy}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCopiesTotal, err)
	}

	return &AlgoMetrics{
		operationsTotal:   opsTotal,
		operationDuration: opDuration,
		comparisonsTotal:  comparisons,
		swapsTotal:        swaps,
		copiesTotal:       copies,
	}, nil
}

// RecordOperation records a completed operation with its outcome and duration.
func (am *AlgoMetrics) RecordOperation(ctx context.Context, op string, err error, duration time.Duration) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}

	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	am.operationsTotal.Add(ctx, 1, attrs)
	am.operationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordCounts adds the element counters gathered by an instrumented
// descriptor during op.
func (am *AlgoMetrics) RecordCounts(ctx context.Context, op string, counts elem.Counts) {
	attrs := metric.WithAttributes(attribute.String(attrOp, op))

	am.comparisonsTotal.Add(ctx, counts.Compares, attrs)
	am.swapsTotal.Add(ctx, counts.Swaps, attrs)
	am.copiesTotal.Add(ctx, counts.Copies, attrs)
}
