package concurrent

import "sync"

// WorkerFunc processes one item and returns its result.
type WorkerFunc[T any, R any] func(item T) R

// RunnerConfig configures the concurrent runner.
type RunnerConfig struct {
	MaxConcurrency int // 0 means unlimited concurrency
}

// Runner fans work out to one goroutine per item and funnels results back through a single
// collector goroutine, so result callbacks never run concurrently with each other.
type Runner[T any, R any] struct {
	config RunnerConfig
}

// NewRunner creates a new concurrent runner with the given configuration.
func NewRunner[T any, R any](config RunnerConfig) *Runner[T, R] {
	if config.MaxConcurrency < 0 {
		config.MaxConcurrency = 0
	}
	return &Runner[T, R]{config: config}
}

// Outcome pairs an item with the result its worker produced.
type Outcome[T any, R any] struct {
	Item   T
	Result R
}

// RunWithCallback executes worker for every item and calls onResult as each one finishes.
// It returns only after every worker has finished and every callback has returned.
func (r *Runner[T, R]) RunWithCallback(items []T, worker WorkerFunc[T, R], onResult func(Outcome[T, R])) {
	if len(items) == 0 {
		return
	}

	results := make(chan Outcome[T, R])
	var collectWG sync.WaitGroup
	collectWG.Add(1)
	go func() {
		defer collectWG.Done()
		for o := range results {
			if onResult != nil {
				onResult(o)
			}
		}
	}()

	// Throttle channel for limiting concurrency (if configured)
	var throttle chan struct{}
	if r.config.MaxConcurrency > 0 {
		throttle = make(chan struct{}, r.config.MaxConcurrency)
	}

	var workersWG sync.WaitGroup
	for _, item := range items {
		workersWG.Add(1)
		if throttle != nil {
			throttle <- struct{}{}
		}
		go func(item T) {
			defer workersWG.Done()
			if throttle != nil {
				defer func() { <-throttle }()
			}
			results <- Outcome[T, R]{Item: item, Result: worker(item)}
		}(item)
	}

	workersWG.Wait()
	close(results)
	collectWG.Wait()
}
