package observe

import (
	"context"
	"time"

	"github.com/efkanbakanay/devhelper/cache"
	"github.com/efkanbakanay/devhelper/logging"
)

// ObservedCache decorates a cache.Cache with metrics and wraps factory fills
// with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: safe for concurrent use when the wrapped cache is.
//   - Context: WrapFactory propagates context through tracing spans.
//   - Errors: errors from the wrapped cache and factories are recorded and
//     propagated unchanged.
//   - Ownership: values are passed through without modification.
type ObservedCache struct {
	next    cache.Cache
	tracer  Tracer
	metrics Metrics
	logger  logging.Logger
}

// NewObservedCache creates an ObservedCache around next. Nil telemetry
// components default to no-ops.
func NewObservedCache(next cache.Cache, tracer Tracer, metrics Metrics, logger logging.Logger) *ObservedCache {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &ObservedCache{
		next:    next,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// ObservedCacheFromObserver creates an ObservedCache from an Observer.
// This is a convenience function for common use cases.
func ObservedCacheFromObserver(next cache.Cache, obs Observer) (*ObservedCache, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewObservedCache(next, tracer, metrics, obs.Logger()), nil
}

// Get forwards to the wrapped cache and records the lookup outcome.
func (o *ObservedCache) Get(key string) (any, bool) {
	v, ok := o.next.Get(key)
	o.metrics.RecordLookup(context.Background(), ok)
	return v, ok
}

// SetWithTTL forwards to the wrapped cache, logging failures.
func (o *ObservedCache) SetWithTTL(key string, value any, ttl cache.TTL) error {
	err := o.next.SetWithTTL(key, value, ttl)
	if err != nil {
		o.logger.Error("cache write failed", logging.Fields{
			"key":   key,
			"error": err.Error(),
		})
	}
	return err
}

// WrapFactory instruments a factory with a span, fill metrics, and a log
// line. The factory's result and error pass through unchanged.
func (o *ObservedCache) WrapFactory(op string, fn cache.Factory) cache.Factory {
	return func(ctx context.Context) (any, error) {
		ctx, span := o.tracer.StartSpan(ctx, op)

		start := time.Now()
		result, err := fn(ctx)
		duration := time.Since(start)

		o.tracer.EndSpan(span, err)
		o.metrics.RecordFill(ctx, duration, err)

		fields := logging.Fields{
			"op":          op,
			"duration_ms": float64(duration.Milliseconds()),
		}
		if err != nil {
			fields["error"] = err.Error()
			o.logger.Error("cache fill failed", fields)
		} else {
			o.logger.Info("cache fill completed", fields)
		}

		return result, err
	}
}

// EvictionHook adapts the metrics recorder to the store's eviction callback.
// Wire it into Options.OnEvicted to count evictions by reason.
func (o *ObservedCache) EvictionHook() cache.EvictionFunc {
	return func(key string, value any, reason cache.EvictionReason) {
		o.metrics.RecordEviction(context.Background(), reason.String())
	}
}

// Ensure ObservedCache implements cache.Cache
var _ cache.Cache = (*ObservedCache)(nil)
