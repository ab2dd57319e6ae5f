package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper is a session store that can drop its expired entries.
type Sweeper interface {
	Sweep(now time.Time) int
}

// StartSessionSweeper runs store.Sweep every interval until ctx is done.
// The returned channel is closed once the sweeper has stopped.
func StartSessionSweeper(ctx context.Context, store Sweeper, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("[SessionSweeper] started", zap.Duration("interval", interval))
		for {
			select {
			case <-ctx.Done():
				logger.Info("[SessionSweeper] stopped")
				return
			case now := <-ticker.C:
				if n := store.Sweep(now); n > 0 {
					logger.Debug("[SessionSweeper] removed expired sessions", zap.Int("count", n))
				}
			}
		}
	}()
	return done
}
