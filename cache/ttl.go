package cache

import (
	"time"

	"github.com/efkanbakanay/devhelper/logging"
)

// Default expiration and sizing values, used when Options leaves the
// corresponding field zero.
const (
	DefaultCapacityLimit      = 1024
	DefaultCompactionFraction = 0.2
	DefaultSliding            = 30 * time.Minute
	DefaultAbsolute           = time.Hour
)

// TTL sets per-entry expiration. The zero value selects the store defaults.
//
// When either field is set explicitly, the other field's zero means "none":
// TTL{Absolute: time.Hour} produces an entry with no sliding window, and
// TTL{Sliding: time.Minute} produces an entry with no absolute cutoff.
// An entry expires at the earlier of its two deadlines; the sliding deadline
// is pushed forward on every successful read.
type TTL struct {
	// Sliding is the maximum idle time between reads.
	Sliding time.Duration

	// Absolute is the maximum lifetime from the time of the write,
	// regardless of access.
	Absolute time.Duration
}

// Options configure a Store. The zero value is usable; zero fields take the
// package defaults above.
type Options struct {
	// CapacityLimit is the maximum number of entries before compaction.
	CapacityLimit int

	// CompactionFraction is the fraction of entries removed when the store
	// exceeds CapacityLimit. Values outside (0, 1] take the default.
	CompactionFraction float64

	// DefaultTTL applies to entries written without an explicit TTL.
	DefaultTTL TTL

	// OnEvicted, if set, is invoked for every entry that leaves the store.
	OnEvicted EvictionFunc

	// Logger receives store diagnostics. Defaults to logging.Nop.
	Logger logging.Logger

	// SweepInterval enables a background goroutine that drops expired
	// entries. Zero disables the sweeper; expired entries are then only
	// dropped lazily on access or during compaction.
	SweepInterval time.Duration
}

// deadline computes the effective expiration for an entry: the earlier of the
// sliding deadline (now+sliding) and the absolute deadline. A zero return
// means the entry never expires.
func deadline(now time.Time, sliding time.Duration, absolute time.Time) time.Time {
	var d time.Time
	if sliding > 0 {
		d = now.Add(sliding)
	}
	if !absolute.IsZero() && (d.IsZero() || absolute.Before(d)) {
		d = absolute
	}
	return d
}
