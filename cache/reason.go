package cache

// EvictionReason explains why an entry left the store.
type EvictionReason int

const (
	// ReasonRemoved means the entry was deleted by Remove or Clear.
	ReasonRemoved EvictionReason = iota

	// ReasonReplaced means the entry's value was overwritten by Set or Update.
	ReasonReplaced

	// ReasonExpired means the entry's effective expiration passed.
	ReasonExpired

	// ReasonCapacity means the entry was compacted away under capacity pressure.
	ReasonCapacity
)

func (r EvictionReason) String() string {
	switch r {
	case ReasonRemoved:
		return "removed"
	case ReasonReplaced:
		return "replaced"
	case ReasonExpired:
		return "expired"
	case ReasonCapacity:
		return "capacity"
	default:
		return "unknown"
	}
}

// EvictionFunc receives the key, value, and reason for every entry that
// leaves the store. Callbacks run outside the store's lock; implementations
// may call back into the store but must not assume the entry is still absent
// by the time they do.
type EvictionFunc func(key string, value any, reason EvictionReason)
