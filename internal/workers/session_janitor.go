package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bio-console/internal/logger"
)

// SessionJanitor purges expired sessions on a fixed interval.
type SessionJanitor struct {
	sessions SessionPurger
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionJanitor(sessions SessionPurger, interval time.Duration, log *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   log,
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Warn().Str("func", "*SessionJanitor.Run").Msg("session sweep disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) int {
	purged := j.sessions.PurgeExpired(j.logger.WithContext(ctx), j.now())
	if purged > 0 {
		j.logger.Info().Int("purged", purged).Msg("expired sessions purged")
	}
	return purged
}
