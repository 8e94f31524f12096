// Package tiercache is a three-tier object cache: a fast in-memory tier, a
// compressed in-memory tier, and an on-disk tier. Hot entries migrate toward
// the fast tier, cold entries are demoted downwards, and the disk tier
// survives restarts.
package tiercache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tiercache/go-tier-cache/config"
	"github.com/tiercache/go-tier-cache/internal/events"
	"github.com/tiercache/go-tier-cache/internal/maintenance"
	"github.com/tiercache/go-tier-cache/internal/metrics"
	"github.com/tiercache/go-tier-cache/internal/telemetry"
	"github.com/tiercache/go-tier-cache/internal/tier"
)

var ErrNilConfig = errors.New("nil cache config")

// Cache is the public handle over the tier manager and its background
// workers. The zero value is not usable; construct it with New.
type Cache[V any] struct {
	cfg     *config.Cache
	manager *tier.Manager[V]
	bus     *events.Bus
	sweeper maintenance.Sweeper

	telemeter telemetry.Logger
	cls       context.CancelFunc
}

// New wires the cache from its config: tier manager, event bus, maintenance
// sweeper, and telemetry loop. Closing the cache (or cancelling ctx) stops
// the background workers; in-memory contents are discarded, the disk tier is
// picked up again by the next session.
func New[V any](ctx context.Context, cfg *config.Cache, logger *slog.Logger) (*Cache[V], error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)

	bus := events.NewBus(ctx)
	manager := tier.NewManager[V](cfg, logger, clock.New(), bus)
	sweeper := maintenance.New(ctx, cfg.Maintenance, logger, clock.New(), manager)
	telemeter := telemetry.New(ctx, cfg, logger, manager)

	return &Cache[V]{
		cfg:       cfg,
		manager:   manager,
		bus:       bus,
		sweeper:   sweeper,
		telemeter: telemeter,
		cls:       cancel,
	}, nil
}

// Get returns the value for the key, promoting it to the fast tier on a hit
// in a colder one.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.manager.Get(key)
}

// Set inserts or replaces the value for the key in the fast tier. Without a
// WithTTL option the configured default lifetime applies.
func (c *Cache[V]) Set(key string, value V, opts ...SetOption) error {
	o := c.setOptions(opts)
	return c.manager.Set(key, value, o.priority, o.ttl)
}

// Delete removes the key from every tier.
func (c *Cache[V]) Delete(key string) bool {
	return c.manager.Delete(key)
}

// Clear empties all tiers, including the disk tier's backing files, and
// resets statistics.
func (c *Cache[V]) Clear() {
	c.manager.Clear()
}

// Warm pre-populates the cache: lister enumerates the keys, loader resolves
// each one. Warmed entries are pinned at high priority; a failed load skips
// that key only.
func (c *Cache[V]) Warm(lister func() []string, loader func(string) (V, error), opts ...SetOption) {
	o := c.setOptions(opts)
	c.manager.Warm(lister, loader, o.ttl)
}

func (c *Cache[V]) Stats() Stats {
	return c.manager.Stats()
}

func (c *Cache[V]) Sizes() Sizes {
	return c.manager.Sizes()
}

// Mem reports the total serialized size of in-memory residents.
func (c *Cache[V]) Mem() int64 {
	return c.manager.Mem()
}

// Subscribe registers a handler for cache events. Delivery is asynchronous
// and best-effort; handlers must not block.
func (c *Cache[V]) Subscribe(fn func(Event)) {
	c.bus.Subscribe(fn)
}

// Sweep triggers one maintenance sweep out of schedule, waiting up to timeout
// for the worker to accept it. With maintenance disabled it is a no-op.
func (c *Cache[V]) Sweep(timeout time.Duration) error {
	return c.sweeper.ForceCall(timeout)
}

// PredictiveScores returns the advisory access scores per key prefix. Empty
// when predictive tracking is disabled.
func (c *Cache[V]) PredictiveScores() map[string]float64 {
	return c.manager.Scores()
}

// Collector returns a prometheus collector over this cache, ready to be
// registered with the host application's registry.
func (c *Cache[V]) Collector() prometheus.Collector {
	return metrics.NewCollector(c.manager)
}

// Close stops the background workers. The disk tier's files are left in
// place for the next session.
func (c *Cache[V]) Close() error {
	c.cls()
	return nil
}

func (c *Cache[V]) setOptions(opts []SetOption) setOptions {
	o := setOptions{priority: PriorityNormal}
	if c.cfg.Lifetime.Enabled() {
		o.ttl = c.cfg.Lifetime.TTL
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
