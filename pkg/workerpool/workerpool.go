// Package workerpool provides bounded fan-out helpers.
package workerpool

import (
	"context"
	"sync"
)

type indexed[T any] struct {
	pos  int
	item T
}

// Map runs fn over items with at most workerCount goroutines and returns the
// results in input order. The first error cancels the remaining work and is
// returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	err := Process(ctx, workerCount, items, func(ctx context.Context, pos int, item T) error {
		r, err := fn(ctx, item)
		if err != nil {
			return err
		}
		results[pos] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Process invokes process for every item with at most workerCount goroutines.
// pos is the index of the item in items. The first error cancels the context
// of the remaining calls and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(ctx context.Context, pos int, item T) error,
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan indexed[T], workerCount)
	errs := make(chan error, 1)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, task.pos, task.item); err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for pos, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- indexed[T]{pos: pos, item: item}:
			}
		}
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}
	return ctx.Err()
}
