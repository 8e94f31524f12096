package tiercache

import "github.com/tiercache/go-tier-cache/internal/tier"

// Stats is a point-in-time snapshot of the cache's cumulative counters and
// rolling-window averages.
type Stats = tier.Stats

// Sizes reports the entry count of each tier.
type Sizes = tier.Sizes
