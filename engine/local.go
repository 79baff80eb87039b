package engine

import (
	"context"
	"fmt"
	"time"

	"boardgames/agent"
	"boardgames/config"
	"boardgames/experiments/metrics"
	"boardgames/game"

	"github.com/rs/zerolog/log"
)

// Engine plays a game between two agents on one process
type Engine[S State[S, M], M any] struct {
	State    S
	Agents   map[game.Player]agent.Agent[S, M]
	MaxTurns int
	// Observe, when set, is called after every move with the new state
	Observe func(turn int, player game.Player, move M, state S)
}

// LocalEngine seats human and machine agents at state. A maxTurns of zero
// means config.DefaultMaxTurns.
func LocalEngine[S State[S, M], M any](state S, human, machine agent.Agent[S, M], maxTurns int) *Engine[S, M] {
	if human == nil || machine == nil {
		panic("need an agent for both players")
	}
	if maxTurns <= 0 {
		maxTurns = config.DefaultMaxTurns
	}
	return &Engine[S, M]{
		State: state,
		Agents: map[game.Player]agent.Agent[S, M]{
			game.Human:   human,
			game.Machine: machine,
		},
		MaxTurns: maxTurns,
	}
}

// Run plays until the game is over or MaxTurns moves were made. A game cut
// short ends Ongoing. A checkers capture chain played a leg at a time counts
// one turn per leg.
func (e *Engine[S, M]) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.State.Player())

	turn := 1
	for ; !e.State.Outcome().IsOver() && turn <= e.MaxTurns; turn++ {
		player := e.State.Player()

		move, searchMetric, err := e.Agents[player].FindMove(ctx, e.State)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("turn %d: %v failed to find a move: %w", turn, player, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: searchMetric,
		})

		next, err := e.State.Play(move)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("turn %d: %v played %v: %w", turn, player, move, err)
		}
		log.Debug().Int("turn", turn).Stringer("player", player).Msgf("played %v", move)
		e.State = next
		if e.Observe != nil {
			e.Observe(turn, player, move, next)
		}
	}

	outcome := e.State.Outcome()
	gameMetric.Outcome = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if outcome.IsOver() {
		log.Info().Msgf("game ended after %d moves with outcome %v", gameMetric.TotalMoves, outcome)
	} else {
		log.Info().Msgf("stopped after %d turns with no result", e.MaxTurns)
	}

	return outcome, gameMetric, moveMetrics, nil
}
