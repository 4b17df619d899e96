package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stardental/clinic-backend/pkg/retry"
	"github.com/stretchr/testify/assert"
)

func fastConfig() retry.Config {
	return retry.Config{
		MaxAttempts:     3,
		InitialDelay:    time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffFactor:   2.0,
		MaxTotalTimeout: time.Second,
	}
}

func TestDo(t *testing.T) {
	t.Run("returns immediately on success", func(t *testing.T) {
		calls := 0
		err := retry.Do(context.Background(), fastConfig(), "test", func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until the call succeeds", func(t *testing.T) {
		calls := 0
		err := retry.Do(context.Background(), fastConfig(), "test", func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := retry.Do(context.Background(), fastConfig(), "test", func() error {
			calls++
			return errors.New("still broken")
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Contains(t, err.Error(), "max retry attempts")
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := retry.Do(ctx, fastConfig(), "test", func() error {
			return errors.New("unreachable service")
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
