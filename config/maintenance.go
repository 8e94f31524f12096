package config

import "time"

type MaintenanceCfg struct {
	// Interval is the period between maintenance sweeps. Each sweep removes
	// expired entries from the in-memory tiers, verifies the disk index
	// against its backing files, and decays predictive-access scores.
	Interval time.Duration `yaml:"interval"`

	// DiskSweepRate limits how many backing files are verified per second
	// during a sweep, so maintenance does not monopolize disk bandwidth.
	// Zero or negative means unlimited.
	DiskSweepRate int `yaml:"disk_sweep_rate"`
}

func (cfg *MaintenanceCfg) Enabled() bool {
	return cfg != nil
}
