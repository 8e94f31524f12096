// Package tier orchestrates the three storage tiers: fast in-memory,
// compressed in-memory, and on-disk. Hits promote entries toward the fast
// tier; capacity overflow demotes victims toward the disk tier.
package tier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/ratelimit"

	"github.com/tiercache/go-tier-cache/config"
	"github.com/tiercache/go-tier-cache/internal/codec"
	"github.com/tiercache/go-tier-cache/internal/disk"
	"github.com/tiercache/go-tier-cache/internal/entry"
	"github.com/tiercache/go-tier-cache/internal/events"
	"github.com/tiercache/go-tier-cache/internal/policy"
	"github.com/tiercache/go-tier-cache/internal/predictive"
)

// Manager owns all tier state behind one mutex: promotion and demotion
// sequences are atomic with respect to concurrent callers, capacity loops
// never run concurrently on the same tier, and a key is resident in at most
// one tier at any observable moment.
type Manager[V any] struct {
	mu     sync.Mutex
	cfg    *config.Cache
	logger *slog.Logger
	clk    clock.Clock

	pol    policy.Policy
	codec  *codec.Codec[V]
	store  *disk.Store
	bus    *events.Bus
	scorer predictive.Scorer

	fast       *state[V]
	compressed *state[V]

	counters     *counters
	latencies    *window
	ratios       *window
	sweepLimiter ratelimit.Limiter
}

func NewManager[V any](cfg *config.Cache, logger *slog.Logger, clk clock.Clock, bus *events.Bus) *Manager[V] {
	var store *disk.Store
	if cfg.Persistence.Enabled() {
		store = disk.NewStore(cfg.Persistence.Dir, cfg.Tiers.DiskCapacity)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.Maintenance.Enabled() && cfg.Maintenance.DiskSweepRate > 0 {
		limiter = ratelimit.New(cfg.Maintenance.DiskSweepRate)
	}

	return &Manager[V]{
		cfg:          cfg,
		logger:       logger,
		clk:          clk,
		pol:          policy.New(cfg.Eviction.Policy, logger),
		codec:        codec.New[V](cfg.Compression),
		store:        store,
		bus:          bus,
		scorer:       predictive.New(cfg.Predictive),
		fast:         newState[V](cfg.Tiers.FastCapacity),
		compressed:   newState[V](cfg.Tiers.CompressedCapacity),
		counters:     newCounters(),
		latencies:    newWindow(cfg.Stats.WindowSize),
		ratios:       newWindow(cfg.Stats.WindowSize),
		sweepLimiter: limiter,
	}
}

// Get looks the key up fast tier first, then compressed, then disk. A hit in
// a colder tier promotes the entry back to the fast tier. Expired entries are
// removed and reported as misses. Disk failures degrade to misses.
func (m *Manager[V]) Get(key string) (V, bool) {
	start := m.clk.Now()

	m.mu.Lock()
	v, src, ok := m.lookup(key, start)
	if ok {
		m.counters.hits.Add(1)
		switch src {
		case entry.TierFast:
			m.counters.fastHits.Add(1)
		case entry.TierCompressed:
			m.counters.compressedHits.Add(1)
		case entry.TierDisk:
			m.counters.diskHits.Add(1)
		}
	} else {
		m.counters.misses.Add(1)
	}
	m.latencies.add(float64(m.clk.Now().Sub(start).Nanoseconds()))
	m.mu.Unlock()

	if ok {
		m.publish(events.CacheHit, key)
	} else {
		m.publish(events.CacheMiss, key)
	}
	return v, ok
}

// Set inserts the value into the fast tier, overwriting any residency the key
// had anywhere, then enforces the fast tier's capacity. A value that cannot
// be serialized aborts only this set, leaving prior tier state intact.
func (m *Manager[V]) Set(key string, value V, priority entry.Priority, ttl time.Duration) error {
	data, err := m.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	now := m.clk.Now()

	m.mu.Lock()
	m.fast.remove(key)
	m.compressed.remove(key)
	if m.store != nil {
		m.store.Delete(key)
	}

	e := entry.New(key, value, int64(len(data)), priority, ttl, now)
	m.pol.OnAdd(e, now)
	m.fast.put(e)
	m.enforceFast(now)
	m.mu.Unlock()

	m.scorer.Record(key)
	return nil
}

// Delete removes the key from every tier it is found in. Residency in more
// than one tier is an invariant violation, but deletion stays robust to it.
func (m *Manager[V]) Delete(key string) bool {
	m.mu.Lock()
	removed := m.fast.remove(key)
	if m.compressed.remove(key) {
		removed = true
	}
	if m.store != nil && m.store.Delete(key) {
		removed = true
	}
	m.mu.Unlock()

	if removed {
		m.publish(events.EntryDeleted, key)
	}
	return removed
}

// Clear empties all three tiers, removes the disk tier's backing files, and
// resets statistics.
func (m *Manager[V]) Clear() {
	m.mu.Lock()
	m.fast.clear()
	m.compressed.clear()
	if m.store != nil {
		m.store.Clear()
	}
	m.counters.reset()
	m.latencies.reset()
	m.ratios.reset()
	m.mu.Unlock()

	m.publish(events.CacheCleared, "")
}

// Warm inserts the listed keys at high priority via the caller's loader.
// Individual loader failures are logged and do not abort the remaining keys.
func (m *Manager[V]) Warm(lister func() []string, loader func(string) (V, error), ttl time.Duration) {
	for _, key := range lister() {
		v, err := loader(key)
		if err != nil {
			m.logger.Warn("cache warm-up load failed", "key", key, "err", err)
			continue
		}
		if err = m.Set(key, v, entry.PriorityHigh, ttl); err != nil {
			m.logger.Warn("cache warm-up insert failed", "key", key, "err", err)
		}
	}
}

func (m *Manager[V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	hits, misses, fastHits, compressedHits, diskHits, evictions, compressions, decompressions, diskReads, diskWrites := m.counters.snapshot()

	s := Stats{
		Hits:           hits,
		Misses:         misses,
		FastHits:       fastHits,
		CompressedHits: compressedHits,
		DiskHits:       diskHits,
		Evictions:      evictions,
		Compressions:   compressions,
		Decompressions: decompressions,
		DiskReads:      diskReads,
		DiskWrites:     diskWrites,

		AvgAccessLatency:    time.Duration(m.latencies.average()),
		AvgCompressionRatio: m.ratios.average(),
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}

func (m *Manager[V]) Sizes() Sizes {
	m.mu.Lock()
	defer m.mu.Unlock()

	sizes := Sizes{Fast: m.fast.len(), Compressed: m.compressed.len()}
	if m.store != nil {
		sizes.DiskIndexed = m.store.Len()
	}
	return sizes
}

// Mem reports the total serialized size of in-memory residents.
func (m *Manager[V]) Mem() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fast.mem() + m.compressed.mem()
}

// Scores exposes the advisory predictive-access scores.
func (m *Manager[V]) Scores() map[string]float64 {
	return m.scorer.Scores()
}

/**
 * Maintenance surface.
 */

// SweepExpired removes expired entries from the in-memory tiers.
func (m *Manager[V]) SweepExpired(now time.Time) (removed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range m.fast.expiredKeys(now) {
		m.fast.remove(key)
		removed++
	}
	for _, key := range m.compressed.expiredKeys(now) {
		m.compressed.remove(key)
		removed++
	}
	return removed
}

// SweepDisk verifies every indexed record against its backing file, removing
// entries that are expired, unreadable, or corrupt. One bad record never
// aborts the rest of the sweep. File loads are paced by the sweep limiter.
func (m *Manager[V]) SweepDisk(ctx context.Context) (removed int) {
	if m.store == nil {
		return 0
	}

	m.mu.Lock()
	keys := m.store.Keys()
	m.mu.Unlock()

	for _, key := range keys {
		select {
		case <-ctx.Done():
			return removed
		default:
		}
		m.sweepLimiter.Take()

		m.mu.Lock()
		if m.store.Contains(key) {
			rec, err := m.store.Read(key)
			if err != nil || rec.Expired(m.clk.Now()) {
				if err != nil {
					m.logger.Warn("disk sweep: dropping unreadable record", "key", key, "err", err)
				}
				m.store.Delete(key)
				removed++
			}
		}
		m.mu.Unlock()
	}
	return removed
}

// DecayScores applies the predictive-score decay.
func (m *Manager[V]) DecayScores() (dropped int) {
	return m.scorer.Decay()
}

/**
 * Private API. Callers hold m.mu.
 */

func (m *Manager[V]) lookup(key string, now time.Time) (V, entry.Tier, bool) {
	var zero V

	if e, ok := m.fast.get(key); ok {
		if e.Expired(now) {
			m.fast.remove(key)
			return zero, "", false
		}
		v, okRaw := e.Value()
		if !okRaw {
			// fast residents must hold the raw variant; drop the stray
			m.logger.Warn("dropping fast entry without raw payload", "key", key)
			m.fast.remove(key)
			return zero, "", false
		}
		m.pol.OnAccess(e, now)
		return v, entry.TierFast, true
	}

	if e, ok := m.compressed.get(key); ok {
		if e.Expired(now) {
			m.compressed.remove(key)
			return zero, "", false
		}
		v, ok := m.reinflate(e)
		if !ok {
			m.compressed.remove(key)
			return zero, "", false
		}
		m.compressed.remove(key)
		e.SetTier(entry.TierFast)
		m.pol.OnAccess(e, now)
		m.fast.put(e)
		m.enforceFast(now)
		return v, entry.TierCompressed, true
	}

	if m.store != nil && m.store.Contains(key) {
		if v, ok := m.loadFromDisk(key, now); ok {
			return v, entry.TierDisk, true
		}
	}

	return zero, "", false
}

// reinflate turns a compressed-tier entry back into its raw value. A corrupt
// payload is reported as a failure; the caller drops the entry.
func (m *Manager[V]) reinflate(e *entry.Entry[V]) (V, bool) {
	var zero V

	comp, isCompressed := e.Compressed()
	if !isCompressed {
		v, ok := e.Value()
		return v, ok
	}

	plain, err := m.codec.Decompress(comp)
	if err != nil {
		m.logger.Warn("dropping corrupt compressed entry", "key", e.Key(), "err", err)
		return zero, false
	}
	v, err := m.codec.Decode(plain)
	if err != nil {
		m.logger.Warn("dropping undecodable compressed entry", "key", e.Key(), "err", err)
		return zero, false
	}
	m.counters.decompressions.Add(1)
	e.SetValue(v)
	return v, true
}

// loadFromDisk resolves a disk-tier hit: the record is read, verified,
// removed from the disk index, and promoted into the fast tier as a fresh
// entry. Any failure removes the stale index entry and degrades to a miss.
func (m *Manager[V]) loadFromDisk(key string, now time.Time) (V, bool) {
	var zero V

	rec, err := m.store.Read(key)
	if err != nil {
		m.logger.Warn("disk read failed, treating as miss", "key", key, "err", err)
		m.store.Delete(key)
		return zero, false
	}
	m.counters.diskReads.Add(1)

	if rec.Expired(now) {
		m.store.Delete(key)
		return zero, false
	}

	payload := rec.Payload
	if rec.Compressed {
		payload, err = m.codec.Decompress(payload)
		if err != nil {
			m.logger.Warn("disk record decompression failed, dropping", "key", key, "err", err)
			m.store.Delete(key)
			return zero, false
		}
		m.counters.decompressions.Add(1)
	}

	v, err := m.codec.Decode(payload)
	if err != nil {
		m.logger.Warn("disk record decode failed, dropping", "key", key, "err", err)
		m.store.Delete(key)
		return zero, false
	}

	m.store.Delete(key)
	e := entry.Restore(key, v, int64(len(payload)), rec.Priority, rec.TTL, rec.Created, now)
	m.pol.OnAdd(e, now)
	m.fast.put(e)
	m.enforceFast(now)
	return v, true
}

func (m *Manager[V]) enforceFast(now time.Time) {
	for m.fast.over() {
		victim, ok := m.pol.SelectVictim(m.fast.candidates())
		if !ok {
			// every resident is pinned; the tier may exceed capacity
			return
		}
		m.demoteToCompressed(victim, now)
	}
}

func (m *Manager[V]) enforceCompressed(now time.Time) {
	for m.compressed.over() {
		victim, ok := m.pol.SelectVictim(m.compressed.candidates())
		if !ok {
			return
		}
		m.demoteToDisk(victim)
	}
}

// demoteToCompressed moves a fast-tier victim down. Values over the
// compression threshold are compressed; smaller values (or compression
// failures) are demoted raw.
func (m *Manager[V]) demoteToCompressed(key string, now time.Time) {
	e, ok := m.fast.get(key)
	if !ok {
		return
	}
	m.fast.remove(key)

	if m.cfg.Compression.Enabled() && e.Size() > m.cfg.Compression.ThresholdBytes {
		m.compress(e)
	}

	e.SetTier(entry.TierCompressed)
	m.compressed.put(e)
	m.enforceCompressed(now)
}

func (m *Manager[V]) compress(e *entry.Entry[V]) {
	v, ok := e.Value()
	if !ok {
		return
	}
	plain, err := m.codec.Encode(v)
	if err != nil {
		m.logger.Warn("compression encode failed, demoting raw", "key", e.Key(), "err", err)
		return
	}
	comp, err := m.codec.Compress(plain)
	if err != nil {
		m.logger.Warn("compression failed, demoting raw", "key", e.Key(), "err", err)
		return
	}

	e.SetCompressed(comp)
	m.counters.compressions.Add(1)
	if len(comp) > 0 {
		m.ratios.add(float64(len(plain)) / float64(len(comp)))
	}
}

// demoteToDisk evicts a compressed-tier victim. With persistence enabled the
// entry's payload is written as a record; otherwise the entry is dropped.
// Both paths count as an eviction, as do FIFO drops from the disk index.
func (m *Manager[V]) demoteToDisk(key string) {
	e, ok := m.compressed.get(key)
	if !ok {
		return
	}
	m.compressed.remove(key)
	m.counters.evictions.Add(1)

	if m.store == nil || !m.store.Enabled() {
		return
	}

	payload, compressed, ok := m.persistablePayload(e)
	if !ok {
		return
	}

	rec := disk.Record{
		Key:        e.Key(),
		Payload:    payload,
		Priority:   e.Priority(),
		Created:    e.Created(),
		TTL:        e.TTL(),
		Compressed: compressed,
	}
	dropped, err := m.store.Write(rec)
	if err != nil {
		m.logger.Warn("disk write failed, entry dropped", "key", key, "err", err)
		return
	}
	m.counters.diskWrites.Add(1)
	m.counters.evictions.Add(int64(len(dropped)))
}

func (m *Manager[V]) persistablePayload(e *entry.Entry[V]) (payload []byte, compressed, ok bool) {
	if comp, isCompressed := e.Compressed(); isCompressed {
		return comp, true, true
	}
	v, okRaw := e.Value()
	if !okRaw {
		return nil, false, false
	}
	data, err := m.codec.Encode(v)
	if err != nil {
		m.logger.Warn("skipping persist of unserializable entry", "key", e.Key(), "err", err)
		return nil, false, false
	}
	return data, false, true
}

func (m *Manager[V]) publish(name events.Name, key string) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(events.Event{Name: name, Key: key, At: m.clk.Now()})
}
