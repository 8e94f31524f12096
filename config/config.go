package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultWindowSize          = 100
	defaultPredictiveDelimiter = ":"
	defaultCompressionLevel    = 6
	defaultTelemetryInterval   = 5 * time.Second
)

// AdjustConfig fills in derived and defaulted fields. It must be called after
// building a Cache by hand; LoadConfig calls it on its own.
func (cfg *Cache) AdjustConfig() {
	if cfg.Eviction.Policy == "" {
		cfg.Eviction.Policy = PolicyLRU
	}

	if cfg.Stats.WindowSize <= 0 {
		cfg.Stats.WindowSize = defaultWindowSize
	}
	if cfg.Stats.TelemetryLogsInterval <= 0 {
		cfg.Stats.TelemetryLogsInterval = defaultTelemetryInterval
	}

	if cfg.Compression.Enabled() && cfg.Compression.Level == 0 {
		cfg.Compression.Level = defaultCompressionLevel
	}

	if cfg.Predictive.Enabled() && cfg.Predictive.Delimiter == "" {
		cfg.Predictive.Delimiter = defaultPredictiveDelimiter
	}
}

func LoadConfig(path string) (*Cache, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Cache
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()

	return cfg, nil
}
