package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache activity.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordLookup records a cache lookup and its outcome.
	RecordLookup(ctx context.Context, hit bool)

	// RecordFill records a factory fill with duration and error status.
	RecordFill(ctx context.Context, duration time.Duration, err error)

	// RecordEviction records an entry leaving the cache with the given reason.
	RecordEviction(ctx context.Context, reason string)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter         metric.Meter
	lookupCount   metric.Int64Counter
	fillCount     metric.Int64Counter
	fillErrors    metric.Int64Counter
	fillDuration  metric.Float64Histogram
	evictionCount metric.Int64Counter
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	lookupCount, err := meter.Int64Counter(
		"cache.lookups.total",
		metric.WithDescription("Total number of cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	fillCount, err := meter.Int64Counter(
		"cache.fills.total",
		metric.WithDescription("Total number of factory fills"),
		metric.WithUnit("{fill}"),
	)
	if err != nil {
		return nil, err
	}

	fillErrors, err := meter.Int64Counter(
		"cache.fills.errors",
		metric.WithDescription("Total number of failed factory fills"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	fillDuration, err := meter.Float64Histogram(
		"cache.fill.duration_ms",
		metric.WithDescription("Factory fill duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	evictionCount, err := meter.Int64Counter(
		"cache.evictions.total",
		metric.WithDescription("Total number of entries that left the cache"),
		metric.WithUnit("{eviction}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:         meter,
		lookupCount:   lookupCount,
		fillCount:     fillCount,
		fillErrors:    fillErrors,
		fillDuration:  fillDuration,
		evictionCount: evictionCount,
	}, nil
}

// RecordLookup records a lookup tagged with its outcome.
func (m *metricsImpl) RecordLookup(ctx context.Context, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.lookupCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordFill records metrics for a factory fill.
func (m *metricsImpl) RecordFill(ctx context.Context, duration time.Duration, err error) {
	m.fillCount.Add(ctx, 1)

	if err != nil {
		m.fillErrors.Add(ctx, 1)
	}

	m.fillDuration.Record(ctx, float64(duration.Milliseconds()))
}

// RecordEviction records an eviction tagged with its reason.
func (m *metricsImpl) RecordEviction(ctx context.Context, reason string) {
	m.evictionCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordLookup(ctx context.Context, hit bool)                        {}
func (m *noopMetrics) RecordFill(ctx context.Context, duration time.Duration, err error) {}
func (m *noopMetrics) RecordEviction(ctx context.Context, reason string)                 {}
