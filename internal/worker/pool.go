// Package worker provides the bounded concurrency and pacing primitives
// the scraper runs on: a fixed-size pool that maps a job function over a
// batch of inputs, and a polite per-run rate limiter.
package worker

import (
	"context"
	"sync"
)

// Outcome pairs one input with its result or error. Outcomes come back in
// input order regardless of which worker finished first.
type Outcome[T, R any] struct {
	Input T
	Value R
	Err   error
}

// Map runs fn over every item with at most workers goroutines. It never
// stops early on individual failures; each item gets its own Outcome.
// Cancelling ctx makes unstarted items fail with ctx.Err().
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Outcome[T, R] {
	if workers <= 0 {
		workers = 1
	}

	outcomes := make([]Outcome[T, R], len(items))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i].Input = items[i]
				if err := ctx.Err(); err != nil {
					outcomes[i].Err = err
					continue
				}
				outcomes[i].Value, outcomes[i].Err = fn(ctx, items[i])
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return outcomes
}
