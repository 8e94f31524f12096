package tiercache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tiercache/go-tier-cache/config"
	"github.com/tiercache/go-tier-cache/internal/entry"
)

// TestCache_Close cancels context and stops background workers.
func TestCache_Close(t *testing.T) {
	cfg := &config.Cache{
		Tiers: config.TiersCfg{FastCapacity: 8, CompressedCapacity: 8},
		Maintenance: &config.MaintenanceCfg{
			Interval: time.Second,
		},
	}
	cfg.AdjustConfig()

	cache, err := New[string](context.Background(), cfg, slog.Default())
	require.NoError(t, err)

	// Close should not panic and should be idempotent
	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
}

// TestCache_SetOptions verifies option defaults and overrides: normal
// priority plus the configured lifetime unless the caller says otherwise.
func TestCache_SetOptions(t *testing.T) {
	cfg := &config.Cache{
		Tiers:    config.TiersCfg{FastCapacity: 8, CompressedCapacity: 8},
		Lifetime: &config.LifetimeCfg{TTL: time.Minute},
	}
	cfg.AdjustConfig()

	cache, err := New[string](context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	o := cache.setOptions(nil)
	require.Equal(t, entry.PriorityNormal, o.priority)
	require.Equal(t, time.Minute, o.ttl)

	o = cache.setOptions([]SetOption{WithPriority(PriorityCritical), WithTTL(time.Hour)})
	require.Equal(t, entry.PriorityCritical, o.priority)
	require.Equal(t, time.Hour, o.ttl)
}
