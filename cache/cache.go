package cache

import (
	"errors"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations. ErrStorage is the class for backend
// write failures: Cache implementations over fallible storage wrap it so
// callers can classify with errors.Is. The in-memory Store never returns it.
var (
	ErrNilCache   = errors.New("cache: cache is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
	ErrNilFactory = errors.New("cache: factory is nil")
	ErrStorage    = errors.New("cache: storage failure")
)

// Cache is the minimal surface a read-through coordinator needs from a
// cache implementation.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Get never errors; it returns (nil, false) on miss. Implementations
//   degrade internal read failures to misses rather than surfacing them.
type Cache interface {
	// Get retrieves a cached value. Returns (nil, false) on miss.
	Get(key string) (any, bool)

	// SetWithTTL stores a value under the given expiration settings.
	// The zero TTL selects the implementation's defaults.
	SetWithTTL(key string, value any, ttl TTL) error
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
