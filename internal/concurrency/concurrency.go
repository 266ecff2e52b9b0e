package concurrency

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// NewPool returns a new pool where each task respects context cancellation.
// Wait() will only return the first error seen.
func NewPool(ctx context.Context, maxGoroutines int) *pool.ContextPool {
	return pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxGoroutines)
}

// ForEach calls fn for every index in [0, n) on at most maxGoroutines
// goroutines and returns the first error. Indexes not yet started when an
// error occurs or ctx is cancelled are skipped.
func ForEach(ctx context.Context, maxGoroutines, n int, fn func(ctx context.Context, i int) error) error {
	p := NewPool(ctx, maxGoroutines)
	for i := range n {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i)
		})
	}
	return p.Wait()
}
