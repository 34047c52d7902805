package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultWorkers is used when callers pass a non-positive limit.
const defaultWorkers = 4

// Map runs fn over items with at most limit workers and returns the results
// in submission order. Workers never fail the group; fn owns its own errors.
func Map[T, R any](items []T, limit int, fn func(T) R) []R {
	if limit < 1 {
		limit = defaultWorkers
	}

	results := make([]R, len(items))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(limit)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = fn(item)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
