package config

// Cache groups configuration of all cache subsystems.
// Optional components can be disabled by setting their section to nil.
type Cache struct {
	Tiers TiersCfg `yaml:"tiers"`

	// Eviction selects the victim-selection policy used by the in-memory tiers.
	// The disk tier always evicts in insertion order and ignores this setting.
	Eviction EvictionCfg `yaml:"eviction"`

	// Compression configures compression of values demoted to the compressed tier.
	// If nil, demoted values are kept in their raw form.
	Compression *CompressionCfg `yaml:"compression"`

	// Persistence configures the on-disk tier.
	// If nil, entries evicted from the compressed tier are dropped.
	Persistence *PersistenceCfg `yaml:"persistence"`

	// Lifetime configures the default TTL applied to entries inserted without
	// an explicit one. If nil, such entries never expire.
	Lifetime *LifetimeCfg `yaml:"lifetime"`

	// Maintenance configures the periodic sweep of expired and stale entries.
	// If nil, expiry is only detected lazily on the read path.
	Maintenance *MaintenanceCfg `yaml:"maintenance"`

	// Predictive configures advisory key-prefix access scoring.
	// If nil, no access patterns are tracked.
	Predictive *PredictiveCfg `yaml:"predictive"`

	Stats StatsCfg `yaml:"stats"`
}
