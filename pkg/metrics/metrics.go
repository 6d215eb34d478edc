// Package metrics defines the OpenTelemetry instruments recorded for the
// time operations. The meter provider is backed by a Prometheus exporter
// wired up in the API server.
package metrics

import (
	"context"
	"fmt"
	"time"

	"timeservice/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets is a common set of latency histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Operations records calls, failures, and latency per time operation.
// A nil *Operations is valid and records nothing, so tests can pass nil.
type Operations struct {
	calls    metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOperations registers the operation instruments on the given provider.
func NewOperations(mp metric.MeterProvider) (*Operations, error) {
	meter := mp.Meter("timeservice/timeops")

	calls, err := meter.Int64Counter("time_operations_total",
		metric.WithDescription("Completed time operations, by operation."))
	if err != nil {
		return nil, fmt.Errorf("could not create calls counter: %w", err)
	}

	failures, err := meter.Int64Counter("time_operation_failures_total",
		metric.WithDescription("Failed time operations, by operation and error kind."))
	if err != nil {
		return nil, fmt.Errorf("could not create failures counter: %w", err)
	}

	duration, err := meter.Float64Histogram("time_operation_duration_seconds",
		metric.WithDescription("Time operation latency in seconds."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Operations{calls: calls, failures: failures, duration: duration}, nil
}

// Observe records one completed call of the named operation.
func (o *Operations) Observe(ctx context.Context, operation string, start time.Time, err error) {
	if o == nil {
		return
	}

	opAttr := attribute.String("operation", operation)
	o.calls.Add(ctx, 1, metric.WithAttributes(opAttr))
	o.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(opAttr))

	if err != nil {
		kind := serrors.ErrInternal
		if k := serrors.KindOf(err); k != nil {
			kind = k
		}
		o.failures.Add(ctx, 1, metric.WithAttributes(opAttr, attribute.String("kind", kind.Error())))
	}
}
