// Package observe provides observability primitives for cache operations.
//
// It is a pure instrumentation library: no caching, no transport, no I/O
// beyond exporter setup. Consumers wire the ObservedCache decorator between
// a store and its read-through coordinator.
package observe
