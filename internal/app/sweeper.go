package app

import (
	"context"
	"time"
)

// Sweeper periodically runs the two time-driven transitions: expiring
// break and lunch statuses and delivering due gifts. Mutations already
// trigger a gift sweep on their own; the ticker covers the quiet
// periods where nothing else moves the clock forward.
type Sweeper struct {
	engine   *Engine
	interval time.Duration
}

// NewSweeper returns a sweeper over the engine. A non-positive
// interval falls back to 30 seconds.
func NewSweeper(engine *Engine, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Sweeper{engine: engine, interval: interval}
}

// Run ticks until the context is cancelled. One pass runs immediately
// so a restart catches transitions that came due while down.
func (s *Sweeper) Run(ctx context.Context) {
	s.pass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pass(ctx)
		}
	}
}

func (s *Sweeper) pass(ctx context.Context) {
	if n := s.engine.ExpireStatuses(ctx); n > 0 {
		s.engine.log.WithField("count", n).Info("statuses expired")
	}
	s.engine.DeliverDueGifts(ctx)
}
