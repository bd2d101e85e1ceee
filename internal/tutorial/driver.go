package tutorial

import (
	"context"
	"time"
)

// Drive ticks the running experiment every interval until it completes or
// ctx is done. With interval <= 0 ticks run back to back. It runs on the
// caller's goroutine, so the session keeps a single owner.
func Drive(ctx context.Context, s *Session, interval time.Duration) error {
	if !s.Running() {
		return nil
	}
	run := s.RunID()

	if interval <= 0 {
		for s.TickRun(run) {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.TickRun(run) {
				return nil
			}
		}
	}
}
