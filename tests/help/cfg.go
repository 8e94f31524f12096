package help

import (
	"time"

	"github.com/tiercache/go-tier-cache/config"
)

func Cfg(diskDir string) *config.Cache {
	c := &config.Cache{
		Tiers: config.TiersCfg{
			FastCapacity:       64,
			CompressedCapacity: 64,
			DiskCapacity:       256,
		},
		Eviction: config.EvictionCfg{
			Policy: config.PolicyLRU,
		},
		Compression: &config.CompressionCfg{
			ThresholdBytes: 256,
			Level:          6,
		},
		Lifetime: &config.LifetimeCfg{
			TTL: 5 * time.Minute,
		},
		Maintenance: &config.MaintenanceCfg{
			Interval:      time.Minute,
			DiskSweepRate: 1000,
		},
		Predictive: &config.PredictiveCfg{
			Delimiter: ":",
		},
		Stats: config.StatsCfg{
			WindowSize: 100,
		},
	}
	if diskDir != "" {
		c.Persistence = &config.PersistenceCfg{Dir: diskDir}
	}
	c.AdjustConfig()
	return c
}

// TinyCfg keeps the in-memory tiers at one entry each so every insert
// cascades down, which makes tier transitions easy to provoke.
func TinyCfg(diskDir string) *config.Cache {
	c := Cfg(diskDir)
	c.Tiers.FastCapacity = 1
	c.Tiers.CompressedCapacity = 1
	c.Tiers.DiskCapacity = 8
	c.Lifetime = nil
	return c
}

func LFUCfg(diskDir string) *config.Cache {
	c := Cfg(diskDir)
	c.Eviction.Policy = config.PolicyLFU
	return c
}
