package telemetry

import "github.com/tiercache/go-tier-cache/internal/tier"

// Source is the read-only view of the cache the telemetry loop samples.
type Source interface {
	Stats() tier.Stats
	Sizes() tier.Sizes
	Mem() int64
}

type sampler struct {
	source Source
}

func newSampler(s Source) sampler {
	return sampler{source: s}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	hits           int64
	misses         int64
	fastHits       int64
	compressedHits int64
	diskHits       int64
	evictions      int64
	compressions   int64
	decompressions int64
	diskReads      int64
	diskWrites     int64
}

func (s sampler) snapshot() snapshot {
	st := s.source.Stats()
	return snapshot{
		hits:           st.Hits,
		misses:         st.Misses,
		fastHits:       st.FastHits,
		compressedHits: st.CompressedHits,
		diskHits:       st.DiskHits,
		evictions:      st.Evictions,
		compressions:   st.Compressions,
		decompressions: st.Decompressions,
		diskReads:      st.DiskReads,
		diskWrites:     st.DiskWrites,
	}
}

// deltaSnapshot computes per-interval activity from two cumulative snapshots.
// Counters can move backwards when the cache is cleared mid-interval; deltas
// clamp at zero instead of going negative.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		hits:           clamp(cur.hits - prev.hits),
		misses:         clamp(cur.misses - prev.misses),
		fastHits:       clamp(cur.fastHits - prev.fastHits),
		compressedHits: clamp(cur.compressedHits - prev.compressedHits),
		diskHits:       clamp(cur.diskHits - prev.diskHits),
		evictions:      clamp(cur.evictions - prev.evictions),
		compressions:   clamp(cur.compressions - prev.compressions),
		decompressions: clamp(cur.decompressions - prev.decompressions),
		diskReads:      clamp(cur.diskReads - prev.diskReads),
		diskWrites:     clamp(cur.diskWrites - prev.diskWrites),
	}
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
