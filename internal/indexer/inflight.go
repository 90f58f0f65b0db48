package indexer

import (
	"context"

	"github.com/puzpuzpuz/xsync/v4"
)

type call struct {
	done chan struct{}
	body []byte
	err  error
}

// inflight collapses concurrent identical requests into one. An entry lives
// from dispatch until the request settles, so a request issued after
// settlement always goes to the network.
type inflight struct {
	calls *xsync.Map[string, *call]
}

func newInflight() *inflight {
	return &inflight{calls: xsync.NewMap[string, *call]()}
}

// do runs fn once per key among concurrent callers. Followers receive the
// leader's response bytes and error; shared reports whether this caller was
// a follower.
func (g *inflight) do(ctx context.Context, key string, fn func() ([]byte, error)) (body []byte, shared bool, err error) {
	c := &call{done: make(chan struct{})}
	if actual, loaded := g.calls.LoadOrStore(key, c); loaded {
		select {
		case <-actual.done:
			return actual.body, true, actual.err
		case <-ctx.Done():
			return nil, true, ctx.Err()
		}
	}

	defer func() {
		g.calls.Delete(key)
		close(c.done)
	}()
	c.body, c.err = fn()
	return c.body, false, c.err
}

func (g *inflight) size() int {
	return g.calls.Size()
}
