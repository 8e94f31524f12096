package entry

import "time"

// Entry is one cached item together with its bookkeeping. A key maps to at
// most one Entry across all tiers; the tier manager owns that invariant.
type Entry[V any] struct {
	key      string
	payload  Payload[V]
	size     int64 // serialized byte length, computed once at insertion
	priority Priority
	tier     Tier
	created  time.Time
	accessed time.Time
	hits     int64
	ttl      time.Duration // 0 => never expires
}

// New builds a fast-tier entry holding a raw value.
func New[V any](key string, value V, size int64, priority Priority, ttl time.Duration, now time.Time) *Entry[V] {
	return &Entry[V]{
		key:      key,
		payload:  RawPayload(value),
		size:     size,
		priority: priority,
		tier:     TierFast,
		created:  now,
		accessed: now,
		hits:     1,
		ttl:      ttl,
	}
}

// Restore rebuilds an entry from a persisted record, preserving its original
// creation time and TTL so a disk round trip does not extend its lifetime.
func Restore[V any](key string, value V, size int64, priority Priority, ttl time.Duration, created, now time.Time) *Entry[V] {
	e := New(key, value, size, priority, ttl, now)
	e.created = created
	return e
}

func (e *Entry[V]) Key() string        { return e.key }
func (e *Entry[V]) Size() int64        { return e.size }
func (e *Entry[V]) Priority() Priority { return e.priority }
func (e *Entry[V]) Pinned() bool       { return e.priority.Pinned() }
func (e *Entry[V]) Tier() Tier         { return e.tier }
func (e *Entry[V]) SetTier(t Tier)     { e.tier = t }

func (e *Entry[V]) TTL() time.Duration    { return e.ttl }
func (e *Entry[V]) Created() time.Time    { return e.created }
func (e *Entry[V]) AccessedAt() time.Time { return e.accessed }
func (e *Entry[V]) Hits() int64           { return e.hits }

// Touch records a hit.
func (e *Entry[V]) Touch(now time.Time) {
	e.accessed = now
	e.hits++
}

// Reset re-stamps bookkeeping for a (re)insertion: hit count back to one,
// access time to now.
func (e *Entry[V]) Reset(now time.Time) {
	e.accessed = now
	e.hits = 1
}

// Expired reports whether the entry outlived its TTL. Entries without a TTL
// never expire.
func (e *Entry[V]) Expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.created) > e.ttl
}

func (e *Entry[V]) Value() (V, bool)          { return e.payload.Raw() }
func (e *Entry[V]) Compressed() ([]byte, bool) { return e.payload.Compressed() }
func (e *Entry[V]) IsCompressed() bool         { return e.payload.IsCompressed() }

// SetValue swaps the payload to the raw variant, discarding any compressed
// form so the entry never holds both.
func (e *Entry[V]) SetValue(v V) {
	e.payload = RawPayload[V](v)
}

// SetCompressed swaps the payload to the compressed variant, discarding the
// raw value.
func (e *Entry[V]) SetCompressed(b []byte) {
	e.payload = CompressedPayload[V](b)
}
