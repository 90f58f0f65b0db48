// Package clock provides an injectable clock and context-aware waits.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll evaluates cond up to attempts times, sleeping interval between
// evaluations. It reports whether cond became true. A canceled context ends
// the wait early with its error.
func Poll(ctx context.Context, attempts int, interval time.Duration, cond func() bool) (bool, error) {
	for i := 0; i < attempts; i++ {
		if cond() {
			return true, nil
		}
		if i == attempts-1 {
			break
		}
		if err := SleepWithContext(ctx, interval); err != nil {
			return false, err
		}
	}
	return false, nil
}
