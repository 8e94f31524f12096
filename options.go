package tiercache

import (
	"time"

	"github.com/tiercache/go-tier-cache/internal/entry"
)

// Priority controls eviction exemption: entries at PriorityHigh or above are
// pinned and never selected as eviction victims.
type Priority = entry.Priority

const (
	PriorityLow      = entry.PriorityLow
	PriorityNormal   = entry.PriorityNormal
	PriorityHigh     = entry.PriorityHigh
	PriorityCritical = entry.PriorityCritical
)

type setOptions struct {
	priority Priority
	ttl      time.Duration
}

type SetOption func(*setOptions)

func WithPriority(p Priority) SetOption {
	return func(o *setOptions) { o.priority = p }
}

// WithTTL overrides the configured default lifetime for this entry. Zero
// means the entry never expires.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) { o.ttl = ttl }
}
