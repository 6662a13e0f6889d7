package webhook

import (
	"context"
	"time"
)

const DefaultMaxAttempts = 3

// RetryPolicy decides how many attempts a send gets and how long to wait between them
type RetryPolicy struct {
	MaxAttempts int

	// Backoff returns the wait after the given failed attempt (1-based)
	Backoff func(attempt int) time.Duration
}

// DefaultPolicy waits 1s after the first failure, 2s after the second and so on
func DefaultPolicy(maxAttempts int) *RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     LinearBackoff,
	}
}

// LinearBackoff is attempt seconds
func LinearBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

// Sleeper waits between attempts
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper sleeps on a real timer and wakes early when ctx is done
type TimerSleeper struct{}

// Sleep implements Sleeper
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
