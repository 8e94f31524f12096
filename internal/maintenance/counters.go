package maintenance

import "sync/atomic"

type sweepCounters struct {
	sweeps        atomic.Int64
	expired       atomic.Int64
	diskRemoved   atomic.Int64
	scoresDropped atomic.Int64
}

func newSweepCounters() *sweepCounters {
	return &sweepCounters{}
}

func (c *sweepCounters) snapshot() (sweeps, expired, diskRemoved, scoresDropped int64) {
	return c.sweeps.Load(), c.expired.Load(), c.diskRemoved.Load(), c.scoresDropped.Load()
}
