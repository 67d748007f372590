package service

import (
	"sync"

	"golang.org/x/time/rate"
)

// attemptLimiter keeps one token bucket per user.
type attemptLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// newAttemptLimiter allows perMinute attempts per user with the given burst.
// A non-positive perMinute disables limiting.
func newAttemptLimiter(perMinute float64, burst int) *attemptLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60)
	}
	if burst < 1 {
		burst = 1
	}

	return &attemptLimiter{
		limiters: make(map[int64]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *attemptLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
