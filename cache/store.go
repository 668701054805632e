package cache

import (
	"container/list"
	"math"
	"sync"
	"time"

	"github.com/efkanbakanay/devhelper/logging"
)

// Stats is a point-in-time snapshot of store counters. Evictions counts
// entries dropped by expiry or capacity pressure; entries removed by Remove,
// Clear, or overwrite are not evictions.
type Stats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Sets      uint64
	Evictions uint64
}

// Store is a bounded in-memory cache with sliding and absolute expiration.
//
// Every entry carries an effective expiration: the earlier of its sliding
// deadline and its absolute deadline. Reads refresh the sliding deadline, so
// an entry under active use survives until its absolute cutoff. When a write
// pushes the store past its capacity limit, a fraction of entries is
// compacted away, expired entries first, then least recently used.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Get and Exists never error; write operations surface invalid keys.
// - Notifications: OnEvicted fires outside the store lock, after the entry
//   is gone.
type Store struct {
	limit    int
	fraction float64
	defaults TTL
	onEvict  EvictionFunc
	log      logging.Logger

	now func() time.Time

	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front = least recently used

	hits      uint64
	misses    uint64
	sets      uint64
	evictions uint64

	sweepStop chan struct{}
}

type entry struct {
	key      string
	value    any
	sliding  time.Duration
	absolute time.Time // zero = no absolute cutoff
	expires  time.Time // effective expiration; zero = never
}

// expired reports whether the entry's effective expiration has passed.
// An entry is visible only strictly before its deadline.
func (e *entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// eviction is a pending notification, collected under the lock and delivered
// after it is released.
type eviction struct {
	key    string
	value  any
	reason EvictionReason
}

// New creates a Store. Zero fields in opts take the package defaults.
func New(opts Options) *Store {
	if opts.CapacityLimit <= 0 {
		opts.CapacityLimit = DefaultCapacityLimit
	}
	if opts.CompactionFraction <= 0 || opts.CompactionFraction > 1 {
		opts.CompactionFraction = DefaultCompactionFraction
	}
	if opts.DefaultTTL == (TTL{}) {
		opts.DefaultTTL = TTL{Sliding: DefaultSliding, Absolute: DefaultAbsolute}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}

	s := &Store{
		limit:    opts.CapacityLimit,
		fraction: opts.CompactionFraction,
		defaults: opts.DefaultTTL,
		onEvict:  opts.OnEvicted,
		log:      opts.Logger,
		now:      time.Now,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}

	if opts.SweepInterval > 0 {
		s.sweepStop = make(chan struct{})
		go s.sweep(opts.SweepInterval, s.sweepStop)
	}

	return s
}

// Set stores a value under the store's default expiration.
func (s *Store) Set(key string, value any) error {
	return s.SetWithTTL(key, value, TTL{})
}

// SetWithTTL stores a value with explicit expiration settings. A zero ttl
// selects the store defaults. Overwriting an existing key reports the old
// value with ReasonReplaced.
func (s *Store) SetWithTTL(key string, value any, ttl TTL) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	now := s.now()
	sliding, absolute := s.resolve(now, ttl)

	var evs []eviction
	s.mu.Lock()
	if el, ok := s.entries[key]; ok {
		e := el.Value.(*entry)
		evs = append(evs, eviction{e.key, e.value, ReasonReplaced})
		e.value = value
		e.sliding = sliding
		e.absolute = absolute
		e.expires = deadline(now, sliding, absolute)
		s.lru.MoveToBack(el)
	} else {
		e := &entry{
			key:      key,
			value:    value,
			sliding:  sliding,
			absolute: absolute,
			expires:  deadline(now, sliding, absolute),
		}
		s.entries[key] = s.lru.PushBack(e)
	}
	s.sets++

	if n := s.lru.Len(); n > s.limit {
		remove := int(math.Ceil(s.fraction * float64(n)))
		if over := n - s.limit; remove < over {
			remove = over
		}
		evs = append(evs, s.compactLocked(n-remove, now, ReasonCapacity)...)
	}
	s.mu.Unlock()

	s.notify(evs)
	return nil
}

// resolve maps a TTL to the entry's sliding duration and absolute deadline.
func (s *Store) resolve(now time.Time, ttl TTL) (time.Duration, time.Time) {
	if ttl == (TTL{}) {
		ttl = s.defaults
	}
	sliding := ttl.Sliding
	if sliding < 0 {
		sliding = 0
	}
	var absolute time.Time
	if ttl.Absolute > 0 {
		absolute = now.Add(ttl.Absolute)
	}
	return sliding, absolute
}

// Get retrieves a value. A hit refreshes the entry's sliding deadline and its
// recency. Expired entries are dropped on access and reported as misses.
func (s *Store) Get(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.Lock()
	el, ok := s.entries[key]
	if !ok {
		s.misses++
		s.mu.Unlock()
		return nil, false
	}

	e := el.Value.(*entry)
	if e.expired(now) {
		s.removeLocked(el)
		s.misses++
		s.evictions++
		s.mu.Unlock()
		s.notify([]eviction{{e.key, e.value, ReasonExpired}})
		return nil, false
	}

	e.expires = deadline(now, e.sliding, e.absolute)
	s.lru.MoveToBack(el)
	s.hits++
	v := e.value
	s.mu.Unlock()
	return v, true
}

// Exists reports whether the key holds a live entry. It counts as an access:
// the sliding deadline is refreshed on a hit.
func (s *Store) Exists(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Update overwrites the value of an existing live entry, keeping its
// expiration settings but restarting the sliding window. It reports false
// without creating an entry when the key is absent or expired.
func (s *Store) Update(key string, value any) bool {
	if key == "" {
		return false
	}

	now := s.now()
	s.mu.Lock()
	el, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return false
	}

	e := el.Value.(*entry)
	if e.expired(now) {
		s.removeLocked(el)
		s.evictions++
		s.mu.Unlock()
		s.notify([]eviction{{e.key, e.value, ReasonExpired}})
		return false
	}

	old := e.value
	e.value = value
	e.expires = deadline(now, e.sliding, e.absolute)
	s.lru.MoveToBack(el)
	s.mu.Unlock()

	s.notify([]eviction{{key, old, ReasonReplaced}})
	return true
}

// Remove deletes an entry. Idempotent - no error on miss.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	el, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	e := el.Value.(*entry)
	s.removeLocked(el)
	s.mu.Unlock()

	s.notify([]eviction{{e.key, e.value, ReasonRemoved}})
	return nil
}

// Clear removes all entries. Live entries are reported with ReasonRemoved;
// entries that had already expired are reported with ReasonExpired.
func (s *Store) Clear() error {
	now := s.now()
	s.mu.Lock()
	evs := s.compactLocked(0, now, ReasonRemoved)
	s.mu.Unlock()

	s.notify(evs)
	return nil
}

// Len reports the number of entries currently held, including entries whose
// expiration has passed but which have not yet been dropped.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Entries:   s.lru.Len(),
		Hits:      s.hits,
		Misses:    s.misses,
		Sets:      s.sets,
		Evictions: s.evictions,
	}
}

// Close stops the background sweeper, if one is running. Idempotent. The
// store remains usable after Close.
func (s *Store) Close() error {
	s.mu.Lock()
	ch := s.sweepStop
	s.sweepStop = nil
	s.mu.Unlock()

	if ch != nil {
		close(ch)
	}
	return nil
}

// compactLocked evicts entries until at most target remain: expired entries
// first regardless of recency, then from the least recently used end. Expired
// entries are always reported with ReasonExpired; the rest with reason.
// Caller must hold s.mu.
func (s *Store) compactLocked(target int, now time.Time, reason EvictionReason) []eviction {
	if target < 0 {
		target = 0
	}

	var evs []eviction
	for el := s.lru.Front(); el != nil && s.lru.Len() > target; {
		next := el.Next()
		e := el.Value.(*entry)
		if e.expired(now) {
			s.removeLocked(el)
			s.evictions++
			evs = append(evs, eviction{e.key, e.value, ReasonExpired})
		}
		el = next
	}
	for s.lru.Len() > target {
		el := s.lru.Front()
		e := el.Value.(*entry)
		s.removeLocked(el)
		if reason == ReasonCapacity {
			s.evictions++
		}
		evs = append(evs, eviction{e.key, e.value, reason})
	}
	return evs
}

// removeLocked unlinks an element from the map and the recency list.
// Caller must hold s.mu.
func (s *Store) removeLocked(el *list.Element) {
	e := el.Value.(*entry)
	delete(s.entries, e.key)
	s.lru.Remove(el)
}

// notify delivers pending eviction notifications. Capacity evictions are
// worth operator attention, so they are logged at warning level; other
// reasons are routine and logged at debug.
func (s *Store) notify(evs []eviction) {
	for i := range evs {
		ev := &evs[i]
		if ev.reason == ReasonCapacity {
			s.log.Warn("cache entry evicted under capacity pressure", logging.Fields{
				"key":    ev.key,
				"reason": ev.reason.String(),
			})
		} else {
			s.log.Debug("cache entry removed", logging.Fields{
				"key":    ev.key,
				"reason": ev.reason.String(),
			})
		}
		if s.onEvict != nil {
			s.onEvict(ev.key, ev.value, ev.reason)
		}
	}
}

// sweep periodically drops expired entries until stop is closed.
func (s *Store) sweep(interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-stop:
			return
		}
	}
}

// removeExpired drops every entry whose effective expiration has passed.
func (s *Store) removeExpired() {
	now := s.now()
	var evs []eviction
	s.mu.Lock()
	for el := s.lru.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*entry)
		if e.expired(now) {
			s.removeLocked(el)
			s.evictions++
			evs = append(evs, eviction{e.key, e.value, ReasonExpired})
		}
		el = next
	}
	s.mu.Unlock()

	s.notify(evs)
}

// Ensure Store implements Cache
var _ Cache = (*Store)(nil)
