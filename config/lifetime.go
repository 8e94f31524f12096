package config

import "time"

type LifetimeCfg struct {
	// TTL is the default time-to-live for entries inserted without an explicit
	// one, measured from insertion. Zero means such entries never expire.
	TTL time.Duration `yaml:"ttl"`
}

func (cfg *LifetimeCfg) Enabled() bool {
	return cfg != nil
}
