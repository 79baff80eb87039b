package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"boardgames/agent"
	"boardgames/config"
	"boardgames/game/checkers"
	"boardgames/game/tictactoe"
	"boardgames/searcher"

	"github.com/rs/zerolog/log"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrMissingDepth = errors.New("missing searchDepth")
	ErrWorker       = errors.New("worker failed")
)

// TicTacToeRequest asks for the best move of a tic-tac-toe position
type TicTacToeRequest struct {
	tictactoe.Snapshot
	SearchDepth *int `json:"searchDepth"`
}

// CheckersRequest asks for the best move of a checkers position
type CheckersRequest struct {
	checkers.Snapshot
	SearchDepth *int `json:"searchDepth"`
}

// Response carries the chosen move, null when the position has none
type Response[M any] struct {
	Move    *M                    `json:"move"`
	Metrics searcher.SearchMetric `json:"metrics"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewTicTacToeRequest(s tictactoe.State, depth int) TicTacToeRequest {
	return TicTacToeRequest{Snapshot: s.Snapshot(), SearchDepth: &depth}
}

func NewCheckersRequest(s checkers.State, depth int) CheckersRequest {
	return CheckersRequest{Snapshot: s.Snapshot(), SearchDepth: &depth}
}

func searchDepth(g config.Game, depth *int) (int, error) {
	if depth == nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRequest, ErrMissingDepth)
	}
	if *depth < 0 {
		return 0, fmt.Errorf("%w: searchDepth must not be negative", ErrBadRequest)
	}
	if limit := config.MaxDepth(g); *depth > limit {
		return 0, fmt.Errorf("%w: searchDepth %d exceeds %d for %s", ErrBadRequest, *depth, limit, g)
	}
	return *depth, nil
}

// bestMove decodes a request for g and answers it within timeout
func bestMove(ctx context.Context, timeout time.Duration, g config.Game, body []byte) (any, error) {
	switch g {
	case config.TicTacToe:
		var request TicTacToeRequest
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		state, err := request.State()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		depth, err := searchDepth(g, request.SearchDepth)
		if err != nil {
			return nil, err
		}
		return solve(ctx, timeout, g, tictactoe.BestMove, state, depth)

	case config.Checkers:
		var request CheckersRequest
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		state, err := request.State()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		depth, err := searchDepth(g, request.SearchDepth)
		if err != nil {
			return nil, err
		}
		return solve(ctx, timeout, g, checkers.BestMove, state, depth)
	}
	return nil, fmt.Errorf("%w: %w: %q", ErrBadRequest, config.ErrUnknownGame, g)
}

func solve[S, M any](ctx context.Context, timeout time.Duration, g config.Game, driver agent.Driver[S, M], state S, depth int) (Response[M], error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	move, metric, err := agent.NewMinimaxAgent(driver, depth).FindMove(ctx, state)
	switch {
	case errors.Is(err, agent.ErrNoMove):
		log.Info().Str("game", string(g)).Int("depth", depth).Msg("position has no legal move")
		return Response[M]{Metrics: metric}, nil
	case err != nil:
		return Response[M]{}, err
	}

	log.Info().Str("game", string(g)).Int("depth", depth).Int("nodes", metric.Nodes).
		Dur("took", metric.Duration).Msgf("found move %v", move)
	return Response[M]{Move: &move, Metrics: metric}, nil
}
