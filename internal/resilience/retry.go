package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// FileRetryConfig is used when reading word list files, which may sit on
// slow or flaky mounts.
func FileRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   50 * time.Millisecond,
		MaxDelay:    500 * time.Millisecond,
	}
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. RetryWithResult returns the wrapped error.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// RetryWithResult calls fn until it succeeds, returns a Permanent error, the
// attempts run out or ctx is done.
func RetryWithResult[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var lastErr error
	var result T
	attempts := max(cfg.MaxAttempts, 1)
	for attempt := 0; attempt < attempts; attempt++ {
		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		var perm *permanentError
		if errors.As(lastErr, &perm) {
			return result, perm.err
		}

		if attempt == attempts-1 {
			break
		}

		delay := calculateBackoff(attempt, cfg.BaseDelay, cfg.MaxDelay)

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(delay):
		}
	}
	return result, lastErr
}

func calculateBackoff(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	if baseDelay <= 0 {
		return 0
	}

	delay := time.Duration(float64(baseDelay) * math.Pow(2, float64(attempt)))
	if delay > maxDelay {
		delay = maxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(delay)/2 + 1))
	delay = delay/2 + jitter
	if delay < baseDelay {
		delay = baseDelay
	}
	return delay
}
