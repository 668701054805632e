// Package cache provides a bounded in-memory cache with sliding and absolute
// expiration.
//
// It provides a Store with LRU capacity compaction and eviction notifications,
// a ReadThrough coordinator for get-or-compute loading, and SHA-256-based
// key derivation.
package cache
