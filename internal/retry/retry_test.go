package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDelaysAreMonotonicAndCapped(t *testing.T) {
	var prev time.Duration
	for attempt := 0; attempt < Default.MaxRetries; attempt++ {
		d := Default.delay(attempt)
		assert.GreaterOrEqual(t, d, prev, "delay must be non-decreasing")
		assert.LessOrEqual(t, d, Default.MaxDelay)
		prev = d
	}

	assert.Equal(t, time.Second, Default.delay(0))
	assert.Equal(t, 2*time.Second, Default.delay(1))
	assert.Equal(t, 4*time.Second, Default.delay(2))
	assert.Equal(t, 5*time.Second, Default.delay(3)) // capped
}

func TestDoStopsAfterMaxRetries(t *testing.T) {
	p := Policy{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	boom := errors.New("boom")

	attempts := 0
	_, err := Do(context.Background(), p, func() (string, error) {
		attempts++
		return "", boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 4, attempts, "1 initial attempt + 3 retries")
}

func TestDoReturnsFirstSuccess(t *testing.T) {
	p := Policy{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

	attempts := 0
	got, err := Do(context.Background(), p, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, attempts)
}

func TestDoAbortsWhenContextCancelled(t *testing.T) {
	p := Policy{MaxRetries: 3, BaseDelay: time.Minute, MaxDelay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := Do(ctx, p, func() (string, error) {
			return "", errors.New("always fails")
		})
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not abort on context cancellation")
	}
}
