package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/crewdeck/internal/models"
)

func TestSweeperRunsImmediatePass(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")

	if err := e.StartBreak(ctx, 5); err != nil {
		t.Fatalf("StartBreak: %v", err)
	}
	clock.advance(10 * time.Minute)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewSweeper(e, time.Hour).Run(runCtx)
	}()

	// The initial pass fires before the first tick; poll for its effect.
	deadline := time.After(2 * time.Second)
	for e.CurrentAccount().Status != models.StatusOnShift {
		select {
		case <-deadline:
			t.Fatalf("status = %q, want on_shift from the immediate pass", e.CurrentAccount().Status)
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestSweeperDefaultInterval(t *testing.T) {
	e, _, _ := newTestEngine(t)
	s := NewSweeper(e, 0)
	if s.interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s default", s.interval)
	}
}
