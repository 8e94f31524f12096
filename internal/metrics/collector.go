// Package metrics exposes cache statistics as a prometheus.Collector so a
// host application can plug the cache into its own registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tiercache/go-tier-cache/internal/tier"
)

const namespace = "tiercache"

// Source is the stats surface the collector samples on every scrape.
type Source interface {
	Stats() tier.Stats
	Sizes() tier.Sizes
	Mem() int64
}

// Collector samples the cache at scrape time and emits constant metrics; it
// keeps no state of its own.
type Collector struct {
	source Source

	hits           *prometheus.Desc
	misses         *prometheus.Desc
	tierHits       *prometheus.Desc
	hitRate        *prometheus.Desc
	evictions      *prometheus.Desc
	compressions   *prometheus.Desc
	decompressions *prometheus.Desc
	diskReads      *prometheus.Desc
	diskWrites     *prometheus.Desc
	entries        *prometheus.Desc
	memBytes       *prometheus.Desc
	avgLatency     *prometheus.Desc
	avgRatio       *prometheus.Desc
}

func NewCollector(source Source) *Collector {
	return &Collector{
		source: source,

		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "hits_total"),
			"Total cache hits across all tiers.", nil, nil),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "misses_total"),
			"Total cache misses.", nil, nil),
		tierHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tier_hits_total"),
			"Cache hits broken down by serving tier.", []string{"tier"}, nil),
		hitRate: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "hit_rate"),
			"Lifetime hit rate, hits/(hits+misses).", nil, nil),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "evictions_total"),
			"Entries evicted past the compressed tier.", nil, nil),
		compressions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "compressions_total"),
			"Values compressed on demotion.", nil, nil),
		decompressions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "decompressions_total"),
			"Values decompressed on promotion.", nil, nil),
		diskReads: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "disk_reads_total"),
			"Record files read from the disk tier.", nil, nil),
		diskWrites: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "disk_writes_total"),
			"Record files written to the disk tier.", nil, nil),
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entries"),
			"Current entry count per tier.", []string{"tier"}, nil),
		memBytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "memory_bytes"),
			"Serialized size of in-memory residents.", nil, nil),
		avgLatency: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "avg_access_latency_seconds"),
			"Access latency averaged over the recent-access window.", nil, nil),
		avgRatio: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "avg_compression_ratio"),
			"Original/compressed size averaged over the recent-compression window.", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.tierHits
	ch <- c.hitRate
	ch <- c.evictions
	ch <- c.compressions
	ch <- c.decompressions
	ch <- c.diskReads
	ch <- c.diskWrites
	ch <- c.entries
	ch <- c.memBytes
	ch <- c.avgLatency
	ch <- c.avgRatio
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	sizes := c.source.Sizes()

	counter := func(desc *prometheus.Desc, v int64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), labels...)
	}
	gauge := func(desc *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v, labels...)
	}

	counter(c.hits, stats.Hits)
	counter(c.misses, stats.Misses)
	counter(c.tierHits, stats.FastHits, "fast")
	counter(c.tierHits, stats.CompressedHits, "compressed")
	counter(c.tierHits, stats.DiskHits, "disk")
	counter(c.evictions, stats.Evictions)
	counter(c.compressions, stats.Compressions)
	counter(c.decompressions, stats.Decompressions)
	counter(c.diskReads, stats.DiskReads)
	counter(c.diskWrites, stats.DiskWrites)

	gauge(c.hitRate, stats.HitRate)
	gauge(c.entries, float64(sizes.Fast), "fast")
	gauge(c.entries, float64(sizes.Compressed), "compressed")
	gauge(c.entries, float64(sizes.DiskIndexed), "disk")
	gauge(c.memBytes, float64(c.source.Mem()))
	gauge(c.avgLatency, stats.AvgAccessLatency.Seconds())
	gauge(c.avgRatio, stats.AvgCompressionRatio)
}
