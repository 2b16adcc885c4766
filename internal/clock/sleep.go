// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Sleeper waits on a clockwork clock so callers can swap in a fake clock.
type Sleeper struct {
	clock clockwork.Clock
}

// NewSleeper returns a Sleeper bound to clk. A nil clock means the real clock.
func NewSleeper(clk clockwork.Clock) *Sleeper {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Sleeper{clock: clk}
}

// Sleep waits for the duration or returns early if the context is canceled.
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := s.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// SleepWithContext waits for the duration on the real clock or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return NewSleeper(nil).Sleep(ctx, d)
}
