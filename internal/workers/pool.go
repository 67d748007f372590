package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many jobs run at once. Jobs run on the caller's goroutine
// once a slot is free.
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewPool returns a pool with size slots. size below 1 is treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size)), size: int64(size)}
}

// Do waits for a free slot and runs fn. It returns ctx.Err() if ctx ends
// before a slot frees up.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for worker slot: %w", err)
	}
	defer p.sem.Release(1)

	return fn(ctx)
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return int(p.size)
}
