package agent

import (
	"context"
	"sync"

	"boardgames/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent[S, M any] struct {
	moves Moves[S, M]
	mu    sync.Mutex
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// The same seed replays the same choices.
func NewRandomAgent[S, M any](moves Moves[S, M], seed uint64) Agent[S, M] {
	return &randomAgent[S, M]{moves: moves, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, M]) FindMove(ctx context.Context, state S) (M, searcher.SearchMetric, error) {
	var zero M
	if err := ctx.Err(); err != nil {
		return zero, searcher.SearchMetric{}, err
	}
	moves := a.moves(state)
	if len(moves) == 0 {
		return zero, searcher.SearchMetric{}, ErrNoMove
	}

	a.mu.Lock()
	i := a.rng.Intn(len(moves))
	a.mu.Unlock()
	return moves[i], searcher.SearchMetric{}, nil
}
