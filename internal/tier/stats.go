package tier

import "time"

// Stats is a point-in-time snapshot of cumulative cache counters plus the
// derived rates and rolling-window averages.
type Stats struct {
	Hits   int64
	Misses int64

	FastHits       int64
	CompressedHits int64
	DiskHits       int64

	Evictions      int64
	Compressions   int64
	Decompressions int64
	DiskReads      int64
	DiskWrites     int64

	// HitRate is hits/(hits+misses); 0 before any access.
	HitRate float64

	// AvgAccessLatency is averaged over the bounded recent-access window.
	AvgAccessLatency time.Duration

	// AvgCompressionRatio is original/compressed byte size averaged over the
	// bounded recent-compression window; 0 before any compression.
	AvgCompressionRatio float64
}

// Sizes reports the entry count of each tier.
type Sizes struct {
	Fast        int
	Compressed  int
	DiskIndexed int
}
