// Package telemetry periodically logs cache activity: per-interval access and
// eviction deltas plus a point-in-time storage line.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/tiercache/go-tier-cache/config"
	"github.com/tiercache/go-tier-cache/internal/shared/bytes"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Cache
	logger   *slog.Logger
	source   Source
	interval time.Duration
}

func New(
	ctx context.Context,
	cfg *config.Cache,
	logger *slog.Logger,
	source Source,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		source:   source,
		interval: cfg.Stats.TelemetryLogsInterval,
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg != nil && l.cfg.Stats.IsTelemetryLogsEnabled {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.source)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			common := []any{"interval", l.interval.String()}
			stats := l.source.Stats()
			sizes := l.source.Sizes()

			l.logger.Info("access",
				append(common,
					"hits", d.hits,
					"misses", d.misses,
					"fast_hits", d.fastHits,
					"compressed_hits", d.compressedHits,
					"disk_hits", d.diskHits,
					"hit_rate", stats.HitRate,
					"avg_latency", stats.AvgAccessLatency.String(),
				)...,
			)

			if d.evictions > 0 || d.compressions > 0 || d.diskWrites > 0 {
				l.logger.Info("eviction",
					append(common,
						"evictions", d.evictions,
						"compressions", d.compressions,
						"decompressions", d.decompressions,
						"disk_reads", d.diskReads,
						"disk_writes", d.diskWrites,
						"avg_compression_ratio", stats.AvgCompressionRatio,
					)...,
				)
			}

			l.logger.Info("storage",
				append(common,
					"size", bytes.FmtMem(uint64(max(l.source.Mem(), 0))),
					"fast_entries", sizes.Fast,
					"compressed_entries", sizes.Compressed,
					"disk_entries", sizes.DiskIndexed,
				)...,
			)
		}
	}
}
