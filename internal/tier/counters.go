package tier

import "sync/atomic"

type counters struct {
	hits           atomic.Int64
	misses         atomic.Int64
	fastHits       atomic.Int64
	compressedHits atomic.Int64
	diskHits       atomic.Int64
	evictions      atomic.Int64
	compressions   atomic.Int64
	decompressions atomic.Int64
	diskReads      atomic.Int64
	diskWrites     atomic.Int64
}

func newCounters() *counters {
	return &counters{}
}

func (c *counters) snapshot() (hits, misses, fastHits, compressedHits, diskHits, evictions, compressions, decompressions, diskReads, diskWrites int64) {
	return c.hits.Load(), c.misses.Load(), c.fastHits.Load(), c.compressedHits.Load(), c.diskHits.Load(),
		c.evictions.Load(), c.compressions.Load(), c.decompressions.Load(), c.diskReads.Load(), c.diskWrites.Load()
}

func (c *counters) reset() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.fastHits.Store(0)
	c.compressedHits.Store(0)
	c.diskHits.Store(0)
	c.evictions.Store(0)
	c.compressions.Store(0)
	c.decompressions.Store(0)
	c.diskReads.Store(0)
	c.diskWrites.Store(0)
}
