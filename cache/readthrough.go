package cache

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/efkanbakanay/devhelper/logging"
)

// Factory computes a value on a cache miss. It runs only when the cache has
// no live entry for the key.
type Factory func(ctx context.Context) (any, error)

// ReadThrough coordinates get-or-compute over a Cache.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: factory errors propagate to the caller unwrapped and nothing is
//   cached for them. Cache write failures after a successful factory call are
//   logged and swallowed; the computed value is still returned.
type ReadThrough struct {
	cache Cache
	log   logging.Logger
	group *singleflight.Group // nil unless WithSingleFlight
}

// ReadThroughOption configures a ReadThrough.
type ReadThroughOption func(*ReadThrough)

// WithLogger sets the logger for cache-layer failures.
func WithLogger(l logging.Logger) ReadThroughOption {
	return func(r *ReadThrough) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSingleFlight collapses concurrent misses for the same key into one
// factory call; the waiters share that call's value or error. Without it,
// concurrent misses each invoke the factory (last write wins).
func WithSingleFlight() ReadThroughOption {
	return func(r *ReadThrough) {
		r.group = &singleflight.Group{}
	}
}

// NewReadThrough creates a read-through coordinator over c.
func NewReadThrough(c Cache, opts ...ReadThroughOption) *ReadThrough {
	r := &ReadThrough{
		cache: c,
		log:   logging.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrSet returns the cached value for key, or computes it with factory and
// stores it under the cache's default expiration.
func (r *ReadThrough) GetOrSet(ctx context.Context, key string, factory Factory) (any, error) {
	return r.getOrSet(ctx, key, factory, TTL{})
}

// GetOrSetTTL is GetOrSet with explicit expiration settings for the
// computed value.
func (r *ReadThrough) GetOrSetTTL(ctx context.Context, key string, factory Factory, ttl TTL) (any, error) {
	return r.getOrSet(ctx, key, factory, ttl)
}

func (r *ReadThrough) getOrSet(ctx context.Context, key string, factory Factory, ttl TTL) (any, error) {
	if r == nil || r.cache == nil {
		return nil, ErrNilCache
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	if v, ok := r.cache.Get(key); ok {
		return v, nil
	}

	if r.group != nil {
		v, err, _ := r.group.Do(key, func() (any, error) {
			return r.fill(ctx, key, factory, ttl)
		})
		return v, err
	}
	return r.fill(ctx, key, factory, ttl)
}

// fill runs the factory and stores its result. The factory's error is
// returned as-is; a failed store is logged and does not mask the value.
func (r *ReadThrough) fill(ctx context.Context, key string, factory Factory, ttl TTL) (any, error) {
	v, err := factory(ctx)
	if err != nil {
		return nil, err
	}

	if serr := r.cache.SetWithTTL(key, v, ttl); serr != nil {
		r.log.Error("cache store failed after factory call", logging.Fields{
			"key":   key,
			"error": serr.Error(),
		})
	}
	return v, nil
}

// GetOrSetAs is a typed wrapper over GetOrSet. When the cached entry exists
// but holds a different type, it is treated as a miss: the factory recomputes
// the value and the entry is overwritten.
func GetOrSetAs[T any](ctx context.Context, r *ReadThrough, key string, factory func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if factory == nil {
		return zero, ErrNilFactory
	}

	v, err := r.GetOrSet(ctx, key, func(ctx context.Context) (any, error) {
		return factory(ctx)
	})
	if err != nil {
		return zero, err
	}
	if t, ok := v.(T); ok {
		return t, nil
	}

	// Entry of the wrong type: recompute and overwrite.
	t, err := factory(ctx)
	if err != nil {
		return zero, err
	}
	if serr := r.cache.SetWithTTL(key, t, TTL{}); serr != nil {
		r.log.Error("cache store failed after factory call", logging.Fields{
			"key":   key,
			"error": serr.Error(),
		})
	}
	return t, nil
}
