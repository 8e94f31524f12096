package config

// PolicyID identifies a victim-selection policy.
type PolicyID string

const (
	// PolicyLRU evicts the entry with the oldest access timestamp.
	PolicyLRU PolicyID = "lru"

	// PolicyLFU evicts the entry with the lowest hit count.
	PolicyLFU PolicyID = "lfu"
)

type EvictionCfg struct {
	// Policy selects the eviction policy for the in-memory tiers.
	// Supported values:
	//   - "lru": evict the least recently used entry
	//   - "lfu": evict the least frequently used entry
	// Unknown identifiers fall back to "lru".
	Policy PolicyID `yaml:"policy"`
}
