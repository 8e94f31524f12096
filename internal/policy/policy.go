// Package policy holds the pluggable victim-selection logic for the
// in-memory tiers. The disk tier evicts in plain insertion order and does not
// go through a Policy.
package policy

import (
	"log/slog"
	"time"

	"github.com/tiercache/go-tier-cache/config"
)

// Candidate is the view of a cache entry a policy may inspect and stamp.
// Pinned candidates (high/critical priority) are never selected as victims.
type Candidate interface {
	Key() string
	Pinned() bool
	AccessedAt() time.Time
	Hits() int64
	Touch(now time.Time)
	Reset(now time.Time)
}

type Policy interface {
	// OnAdd initializes bookkeeping for a (re)inserted entry.
	OnAdd(c Candidate, now time.Time)

	// OnAccess updates bookkeeping on every hit.
	OnAccess(c Candidate, now time.Time)

	// SelectVictim scans the tier's entries, given in the tier's insertion
	// order, and returns the key to evict. It returns false when every entry
	// is pinned; the tier is then allowed to exceed its capacity. Ties go to
	// the first entry encountered.
	SelectVictim(candidates []Candidate) (key string, ok bool)
}

// New builds the policy for the given identifier. Unknown identifiers fall
// back to LRU.
func New(id config.PolicyID, logger *slog.Logger) Policy {
	switch id {
	case config.PolicyLRU:
		return &LRU{}
	case config.PolicyLFU:
		return &LFU{}
	default:
		logger.Warn("unknown eviction policy, falling back to lru", "policy", string(id))
		return &LRU{}
	}
}
