package resilience

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	calls := 0
	data, err := RetryWithResult(context.Background(), fastRetry(5), func() ([]byte, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("resource temporarily unavailable")
		}
		return []byte("damn\n"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "damn\n", string(data))
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := RetryWithResult(context.Background(), fastRetry(5), func() ([]byte, error) {
		calls++
		return nil, Permanent(fs.ErrNotExist)
	})
	require.ErrorIs(t, err, fs.ErrNotExist)

	var perm *permanentError
	assert.False(t, errors.As(err, &perm), "permanent marker should be stripped from the returned error")
	assert.Equal(t, 1, calls)
}

func TestPermanentNil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	result, err := RetryWithResult(context.Background(), fastRetry(3), func() (string, error) {
		calls++
		return "", errors.New("persistent error")
	})
	assert.EqualError(t, err, "persistent error")
	assert.Empty(t, result)
	assert.Equal(t, 3, calls)
}

func TestRetryRunsAtLeastOnce(t *testing.T) {
	calls := 0
	_, _ = RetryWithResult(context.Background(), RetryConfig{}, func() (int, error) {
		calls++
		return 0, errors.New("fail")
	})
	assert.Equal(t, 1, calls)
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := RetryConfig{
		MaxAttempts: 10,
		BaseDelay:   50 * time.Millisecond,
		MaxDelay:    100 * time.Millisecond,
	}

	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := RetryWithResult(ctx, cfg, func() ([]byte, error) {
		return nil, errors.New("always fails")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoff(t *testing.T) {
	cfg := FileRetryConfig()

	for attempt := 0; attempt < 10; attempt++ {
		delay := calculateBackoff(attempt, cfg.BaseDelay, cfg.MaxDelay)
		assert.GreaterOrEqual(t, delay, cfg.BaseDelay, "attempt %d", attempt)
		assert.LessOrEqual(t, delay, cfg.MaxDelay, "attempt %d", attempt)
	}

	assert.Zero(t, calculateBackoff(3, 0, time.Second))
}
