package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs functions with a bounded number of goroutines.
type WorkerPool struct {
	workerCount int
}

// NewWorkerPool creates a pool; counts below one become one.
func NewWorkerPool(workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &WorkerPool{workerCount: workerCount}
}

// Size returns the concurrency limit.
func (wp *WorkerPool) Size() int { return wp.workerCount }

// RunAll executes every function, never cancelling the others on failure.
// The result has one slot per function: errs[i] is the error returned by
// functions[i], or ctx.Err() if ctx was done before it started.
func (wp *WorkerPool) RunAll(ctx context.Context, functions ...func(context.Context) error) []error {
	errs := make([]error, len(functions))
	if len(functions) == 0 {
		return errs
	}

	g := new(errgroup.Group)
	g.SetLimit(wp.workerCount)

	for i, fn := range functions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = fn(ctx)
			return nil
		})
	}

	_ = g.Wait()
	return errs
}
