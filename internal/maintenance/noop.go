package maintenance

import "time"

// NoOpSweeper stands in when maintenance is disabled; expiry is then only
// detected lazily on the read path.
type NoOpSweeper struct{}

func (NoOpSweeper) ForceCall(_ time.Duration) error { return nil }

func (NoOpSweeper) Metrics() (sweeps, expired, diskRemoved, scoresDropped int64) {
	return 0, 0, 0, 0
}

func (NoOpSweeper) Close() error { return nil }
