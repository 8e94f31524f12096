package config

type TiersCfg struct {
	// FastCapacity is the maximum number of entries held by the fast in-memory
	// tier. Pinned entries may push a tier past its nominal capacity because
	// they are never selected as eviction victims.
	FastCapacity int `yaml:"fast_capacity"`

	// CompressedCapacity is the maximum number of entries held by the
	// compressed in-memory tier.
	CompressedCapacity int `yaml:"compressed_capacity"`

	// DiskCapacity is the maximum number of entries registered in the disk
	// index. Overflow is removed in plain insertion order.
	DiskCapacity int `yaml:"disk_capacity"`
}
