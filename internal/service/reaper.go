package service

import (
	"context"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

// SessionReaper periodically discards expired fitting sessions.
type SessionReaper struct {
	service  *FittingService
	interval time.Duration
}

func NewSessionReaper(service *FittingService, interval time.Duration) *SessionReaper {
	return &SessionReaper{service: service, interval: interval}
}

// Run blocks until ctx is cancelled.
func (r *SessionReaper) Run(ctx context.Context) {
	ticker := jitterbug.New(r.interval, &jitterbug.Norm{Stdev: 30 * time.Millisecond, Mean: 0})
	defer ticker.Stop()

	zap.S().Named("session_reaper").Infow("session reaper started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			zap.S().Named("session_reaper").Info("session reaper stopped")
			return
		case <-ticker.C:
		}

		deleted, err := r.service.ReapExpired(ctx)
		if err != nil {
			zap.S().Named("session_reaper").Errorw("failed to reap expired sessions", "error", err)
			continue
		}
		if deleted > 0 {
			zap.S().Named("session_reaper").Infow("expired sessions reaped", "count", deleted)
		}
	}
}
