package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestAdjustConfig_Defaults verifies defaulted fields are filled in for a
// hand-built config.
func TestAdjustConfig_Defaults(t *testing.T) {
	cfg := &Cache{
		Tiers:       TiersCfg{FastCapacity: 10, CompressedCapacity: 10},
		Compression: &CompressionCfg{ThresholdBytes: 512},
		Predictive:  &PredictiveCfg{},
	}
	cfg.AdjustConfig()

	require.Equal(t, PolicyLRU, cfg.Eviction.Policy)
	require.Equal(t, 100, cfg.Stats.WindowSize)
	require.Equal(t, 5*time.Second, cfg.Stats.TelemetryLogsInterval)
	require.Equal(t, 6, cfg.Compression.Level)
	require.Equal(t, ":", cfg.Predictive.Delimiter)
}

// TestAdjustConfig_KeepsExplicitValues verifies explicit settings survive.
func TestAdjustConfig_KeepsExplicitValues(t *testing.T) {
	cfg := &Cache{
		Eviction:    EvictionCfg{Policy: PolicyLFU},
		Compression: &CompressionCfg{ThresholdBytes: 512, Level: 9},
		Stats:       StatsCfg{WindowSize: 7},
	}
	cfg.AdjustConfig()

	require.Equal(t, PolicyLFU, cfg.Eviction.Policy)
	require.Equal(t, 9, cfg.Compression.Level)
	require.Equal(t, 7, cfg.Stats.WindowSize)
}

// TestLoadConfig verifies a yaml file round-trips into a config with
// defaults applied.
func TestLoadConfig(t *testing.T) {
	yml := `
tiers:
  fast_capacity: 100
  compressed_capacity: 200
  disk_capacity: 300
eviction:
  policy: lfu
compression:
  threshold_bytes: 1024
persistence:
  dir: /tmp/tier-cache
lifetime:
  ttl: 5m
maintenance:
  interval: 30s
  disk_sweep_rate: 500
predictive: {}
stats:
  window_size: 50
  stat_logs_enabled: true
`
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 100, cfg.Tiers.FastCapacity)
	require.Equal(t, 300, cfg.Tiers.DiskCapacity)
	require.Equal(t, PolicyLFU, cfg.Eviction.Policy)
	require.True(t, cfg.Compression.Enabled())
	require.Equal(t, 6, cfg.Compression.Level) // defaulted
	require.Equal(t, "/tmp/tier-cache", cfg.Persistence.Dir)
	require.Equal(t, 5*time.Minute, cfg.Lifetime.TTL)
	require.Equal(t, 30*time.Second, cfg.Maintenance.Interval)
	require.Equal(t, 500, cfg.Maintenance.DiskSweepRate)
	require.Equal(t, ":", cfg.Predictive.Delimiter) // defaulted
	require.Equal(t, 50, cfg.Stats.WindowSize)
	require.True(t, cfg.Stats.IsTelemetryLogsEnabled)
}

// TestLoadConfig_MissingFile verifies a sensible error for a bad path.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
