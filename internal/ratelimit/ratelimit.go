package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces outbound requests.
type Limiter interface {
	Wait(ctx context.Context) error
}

// FixedLimiter enforces a constant minimum interval between requests. The
// first call passes immediately; every later call waits out the remainder of
// the interval. Marketplaces block clients that hammer them, so the cadence
// is applied to every request uniformly.
type FixedLimiter struct {
	limiter *rate.Limiter
}

func NewFixed(interval time.Duration) *FixedLimiter {
	return &FixedLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (f *FixedLimiter) Wait(ctx context.Context) error {
	return f.limiter.Wait(ctx)
}
