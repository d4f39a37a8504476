package meta

import (
	"context"
	"math/rand"
	"time"
)

// withRetries runs fn up to retries+1 times. fn reports whether its error is
// retryable. Backoff doubles per attempt with jitter.
func withRetries(ctx context.Context, retries int, fn func() (retryable bool, err error)) error {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay*time.Duration(1<<(attempt-1)) + time.Duration(rand.Int63n(int64(retryBaseDelay)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		retryable, err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return lastErr
}
