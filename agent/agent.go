package agent

import (
	"context"
	"errors"

	"boardgames/searcher"
)

var ErrNoMove = errors.New("no legal move")

type Agent[S, M any] interface {
	// FindMove returns the move to play in state and the search metrics (if collected)
	FindMove(ctx context.Context, state S) (M, searcher.SearchMetric, error)
}

// Driver picks a move by searching depth plies below state. It reports false
// when state has no legal move.
type Driver[S, M any] func(state S, depth int, options ...searcher.Option) (M, bool)

// Moves lists the legal moves of a state
type Moves[S, M any] func(state S) []M
