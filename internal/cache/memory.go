package cache

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/clock"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// Memory is an in-process TTL cache. Expired entries are dropped on lookup
// or by Purge.
type Memory[V any] struct {
	entries *xsync.Map[string, entry[V]]
	ttl     time.Duration
	clock   clock.Clock
	metrics Metrics
}

// NewMemory constructs a Memory cache. A nil clock uses the wall clock and
// nil metrics are discarded.
func NewMemory[V any](ttl time.Duration, clk clock.Clock, m Metrics) *Memory[V] {
	if clk == nil {
		clk = clock.System{}
	}
	if m == nil {
		m = nopMetrics{}
	}
	return &Memory[V]{
		entries: xsync.NewMap[string, entry[V]](),
		ttl:     ttl,
		clock:   clk,
		metrics: m,
	}
}

// Get returns the live value stored under key.
func (c *Memory[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	e, ok := c.entries.Load(key)
	if ok && !c.clock.Now().Before(e.expires) {
		c.entries.Delete(key)
		ok = false
	}
	c.metrics.ObserveLookup(ok)
	if !ok {
		return zero, false, nil
	}
	return e.value, true, nil
}

// Set stores value under key for the cache TTL.
func (c *Memory[V]) Set(_ context.Context, key string, value V) error {
	c.entries.Store(key, entry[V]{value: value, expires: c.clock.Now().Add(c.ttl)})
	return nil
}

// Purge removes every expired entry and returns how many were removed.
func (c *Memory[V]) Purge() int {
	now := c.clock.Now()
	removed := 0
	c.entries.Range(func(key string, e entry[V]) bool {
		if !now.Before(e.expires) {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// PurgeEvery calls Purge every interval until ctx is done.
func (c *Memory[V]) PurgeEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *Memory[V]) Len() int {
	return c.entries.Size()
}
