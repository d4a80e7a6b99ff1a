package ratelimit

import (
	"sync"
	"time"
)

// Limiter caps outbound request frequency with a sliding window of
// request timestamps. State is process-local and resets on restart.
type Limiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	requests []time.Time
	now      func() time.Time
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// CanMakeRequest reports whether another request fits in the current
// window. Entries older than the window are pruned on each check.
func (l *Limiter) CanMakeRequest() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune()
	return len(l.requests) < l.max
}

// Record appends the current time to the window. Call it only after a
// request actually went out.
func (l *Limiter) Record() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests = append(l.requests, l.now())
}

// WaitTime returns how long until the oldest recorded request leaves
// the window, or zero if nothing is recorded.
func (l *Limiter) WaitTime() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune()
	if len(l.requests) == 0 {
		return 0
	}

	oldest := l.requests[0]
	for _, t := range l.requests[1:] {
		if t.Before(oldest) {
			oldest = t
		}
	}

	wait := l.window - l.now().Sub(oldest)
	if wait < 0 {
		return 0
	}
	return wait
}

func (l *Limiter) prune() {
	cutoff := l.now().Add(-l.window)
	kept := l.requests[:0]
	for _, t := range l.requests {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.requests = kept
}
