// Package maintenance runs the periodic background sweep: expired in-memory
// entries, stale disk records, and predictive-score decay.
package maintenance

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/tiercache/go-tier-cache/config"
)

var ErrSweeperNotResponded = errors.New("maintenance sweeper not responded")

// Target is the surface the sweeper drives. The tier manager implements it.
type Target interface {
	SweepExpired(now time.Time) int
	SweepDisk(ctx context.Context) int
	DecayScores() int
}

type Sweeper interface {
	// ForceCall triggers one sweep out of schedule, waiting up to timeout for
	// the worker to accept it.
	ForceCall(timeout time.Duration) error
	Metrics() (sweeps, expired, diskRemoved, scoresDropped int64)
	Close() error
}

// SweepWorker runs one sweep per configured interval. A sweep already in
// flight is never overlapped: the in-flight guard drops coinciding triggers.
type SweepWorker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.MaintenanceCfg
	logger   *slog.Logger
	clk      clock.Clock
	target   Target
	counters *sweepCounters
	inFlight atomic.Bool
	invokeCh chan struct{}
}

func New(
	ctx context.Context,
	cfg *config.MaintenanceCfg,
	logger *slog.Logger,
	clk clock.Clock,
	target Target,
) Sweeper {
	if !cfg.Enabled() {
		return &NoOpSweeper{}
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&SweepWorker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		clk:      clk,
		target:   target,
		counters: newSweepCounters(),
		invokeCh: make(chan struct{}),
	}).run()
}

func (w *SweepWorker) ForceCall(timeout time.Duration) error {
	after := time.NewTimer(timeout)
	defer after.Stop()

	select {
	case <-w.ctx.Done():
	case w.invokeCh <- struct{}{}:
	case <-after.C:
		return ErrSweeperNotResponded
	}
	return nil
}

func (w *SweepWorker) Metrics() (sweeps, expired, diskRemoved, scoresDropped int64) {
	return w.counters.snapshot()
}

func (w *SweepWorker) Close() error {
	w.cancel()
	return nil
}

func (w *SweepWorker) run() *SweepWorker {
	w.logger.Info("maintenance sweeper is running", "interval", w.cfg.Interval)

	go func() {
		defer w.logger.Info("maintenance sweeper is stopped")

		tick := w.clk.Ticker(w.cfg.Interval)
		defer tick.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-tick.C:
				go w.sweep()
			case <-w.invokeCh:
				go w.sweep()
			}
		}
	}()

	return w
}

func (w *SweepWorker) sweep() {
	if !w.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer w.inFlight.Store(false)

	expired := w.target.SweepExpired(w.clk.Now())
	diskRemoved := w.target.SweepDisk(w.ctx)
	dropped := w.target.DecayScores()

	w.counters.sweeps.Add(1)
	w.counters.expired.Add(int64(expired))
	w.counters.diskRemoved.Add(int64(diskRemoved))
	w.counters.scoresDropped.Add(int64(dropped))

	if expired > 0 || diskRemoved > 0 {
		w.logger.Debug("maintenance sweep finished",
			"expired", expired, "disk_removed", diskRemoved, "scores_dropped", dropped)
	}
}
