// Package retry runs operations with exponential backoff.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const defaultMaxDelay = time.Minute

// Policy is a capped exponential backoff schedule.
type Policy struct {
	// Attempts bounds the calls of an operation. Zero retries until the
	// context ends.
	Attempts int
	Initial  time.Duration
	// Max caps a single delay; zero means one minute.
	Max time.Duration
	// Jitter spreads each delay by up to 15% either way.
	Jitter bool
}

// NodePolicy is the schedule used to reach a chain node at startup.
func NodePolicy() Policy {
	return Policy{
		Attempts: 10,
		Initial:  500 * time.Millisecond,
		Max:      30 * time.Second,
		Jitter:   true,
	}
}

// Delay returns the wait after the 1-based attempt: Initial doubled per
// attempt and capped at Max.
func (p Policy) Delay(attempt int) time.Duration {
	limit := p.Max
	if limit <= 0 {
		limit = defaultMaxDelay
	}
	d := p.Initial
	for i := 1; i < attempt && d < limit; i++ {
		d *= 2
	}
	d = min(d, limit)
	if p.Jitter {
		d = time.Duration(float64(d) * (0.85 + 0.3*rand.Float64()))
	}
	return d
}

// Notify is called before every wait with the failed attempt, the delay
// ahead and the attempt's error.
type Notify func(attempt int, delay time.Duration, err error)

// Do calls fn until it succeeds, the policy runs out of attempts or ctx
// ends. notify may be nil.
func Do(ctx context.Context, p Policy, fn func(context.Context) error, notify Notify) error {
	var lastErr error
	for attempt := 1; p.Attempts <= 0 || attempt <= p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry cancelled: %w", err)
		}
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
		if attempt == p.Attempts {
			break
		}

		delay := p.Delay(attempt)
		if notify != nil {
			notify(attempt, delay, lastErr)
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", p.Attempts, lastErr)
}
