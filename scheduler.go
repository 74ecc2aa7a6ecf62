package moebius

import (
	"context"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrSchedulerRunning is returned by operations that require a stopped
// scheduler.
var ErrSchedulerRunning = errors.New("moebius: scheduler already running")

// Scheduler drives multiple independent worlds on a fixed pool of tick
// workers. Each world is assigned to exactly one shard by the hash of
// its id, and each shard is processed by a single goroutine per round,
// so no two goroutines ever tick the same world concurrently. A single
// ticker drives the rounds, and each round finishes on every shard
// before the next one starts.
//
// Stopping prevents future rounds; it never interrupts a round already
// in progress.
type Scheduler struct {
	interval time.Duration
	workers  int
	shards   [][]*World
	logger   *zap.Logger

	cancel  context.CancelFunc
	group   *errgroup.Group
	running bool
}

func NewScheduler(cfg Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(1, cfg.Workers)
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = DefaultConfig().TickInterval
	}

	return &Scheduler{
		interval: interval,
		workers:  workers,
		shards:   make([][]*World, workers),
		logger:   logger,
	}
}

// shardOf is the deterministic world-to-worker assignment.
func (s *Scheduler) shardOf(w *World) int {
	id := w.ID()
	return int(xxhash.Sum64(id[:]) % uint64(len(s.shards)))
}

// AddWorld hands a world over to the scheduler. Must not be called
// while the scheduler is running; ownership of the world transfers to
// its tick worker on Start.
func (s *Scheduler) AddWorld(w *World) error {
	if s.running {
		return ErrSchedulerRunning
	}

	shard := s.shardOf(w)
	s.shards[shard] = append(s.shards[shard], w)
	s.logger.Debug("world scheduled",
		zap.String("world", w.ID().String()),
		zap.Int("shard", shard))
	return nil
}

// Start launches the tick loop. It returns immediately; the loop runs
// until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.running {
		return ErrSchedulerRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.group, ctx = errgroup.WithContext(ctx)
	s.running = true

	s.logger.Info("scheduler started",
		zap.Duration("interval", s.interval),
		zap.Int("workers", s.workers))

	s.group.Go(func() error {
		return s.run(ctx)
	})
	return nil
}

func (s *Scheduler) run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds() * 1000.0
			last = now

			// One goroutine per shard per round keeps world ownership
			// exclusive.
			task(s.workers, s.shards, func(shard []*World) {
				for _, world := range shard {
					world.Tick(dt)
				}
			})
		}
	}
}

// Stop cancels the tick loop and waits for the in-progress round, if
// any, to complete.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}

	s.cancel()
	_ = s.group.Wait()
	s.running = false
	s.logger.Info("scheduler stopped")
}
