package retry

import (
	"context"
	"time"
)

// Policy describes a bounded exponential backoff. Every failure is
// retried identically up to MaxRetries; there is no jitter and no
// distinction between retryable and non-retryable errors.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Default matches the generation service contract: up to 3 retries,
// 1s base delay doubling per attempt, capped at 5s.
var Default = Policy{
	MaxRetries: 3,
	BaseDelay:  time.Second,
	MaxDelay:   5 * time.Second,
}

// delay returns the wait before retry number attempt (0-based).
func (p Policy) delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

// Do executes op, retrying per the policy. The backoff sleep honors
// context cancellation so an abandoned session aborts mid-wait. Once
// retries are exhausted the last error is returned as-is.
func Do[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		if attempt >= p.MaxRetries {
			return zero, err
		}

		select {
		case <-time.After(p.delay(attempt)):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}
