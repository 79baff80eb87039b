package agent

import (
	"context"

	"boardgames/searcher"
)

type minimaxAgent[S, M any] struct {
	driver  Driver[S, M]
	depth   int
	options []searcher.Option
}

// NewMinimaxAgent returns an agent that plays the driver's choice at depth.
// options are passed through to every search.
func NewMinimaxAgent[S, M any](driver Driver[S, M], depth int, options ...searcher.Option) Agent[S, M] {
	return minimaxAgent[S, M]{driver: driver, depth: depth, options: options}
}

type found[M any] struct {
	move   M
	ok     bool
	metric searcher.SearchMetric
}

// FindMove runs the search on its own goroutine so that ctx can abandon it.
// An abandoned search keeps running until it completes; its result is dropped.
func (a minimaxAgent[S, M]) FindMove(ctx context.Context, state S) (M, searcher.SearchMetric, error) {
	var zero M
	if err := ctx.Err(); err != nil {
		return zero, searcher.SearchMetric{}, err
	}

	done := make(chan found[M], 1)
	go func() {
		collector := searcher.NewCollector()
		collector.Start()
		options := append(append([]searcher.Option(nil), a.options...), searcher.WithMetrics(collector))
		move, ok := a.driver(state, a.depth, options...)
		done <- found[M]{move: move, ok: ok, metric: collector.Complete()}
	}()

	select {
	case <-ctx.Done():
		return zero, searcher.SearchMetric{}, ctx.Err()
	case result := <-done:
		if !result.ok {
			return zero, result.metric, ErrNoMove
		}
		return result.move, result.metric, nil
	}
}
