package engine

import (
	"context"
	"testing"

	"boardgames/agent"
	"boardgames/config"
	"boardgames/game"
	"boardgames/game/checkers"
	"boardgames/game/tictactoe"
	"boardgames/searcher"

	"github.com/stretchr/testify/require"
)

// scripted replays fixed moves, legal or not
type scripted struct {
	moves []tictactoe.Move
}

func (s *scripted) FindMove(_ context.Context, _ tictactoe.State) (tictactoe.Move, searcher.SearchMetric, error) {
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, searcher.SearchMetric{}, nil
}

func TestLocalEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("turn cap defaults to the configured one", func(t *testing.T) {
		random := agent.NewRandomAgent(tictactoe.State.LegalMoves, 1)

		require.Equal(t, config.DefaultMaxTurns, LocalEngine(tictactoe.NewGame(game.Human, tictactoe.X), random, random, 0).MaxTurns)
		require.Equal(t, 7, LocalEngine(tictactoe.NewGame(game.Human, tictactoe.X), random, random, 7).MaxTurns)
	})

	t.Run("perfect players draw", func(t *testing.T) {
		perfect := agent.NewMinimaxAgent(tictactoe.BestMove, 9)
		e := LocalEngine(tictactoe.NewGame(game.Human, tictactoe.X), perfect, perfect, 0)

		outcome, gameMetric, moveMetrics, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, game.Draw, outcome)
		require.Equal(t, game.Human, gameMetric.StartingPlayer)
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 9)
		require.Equal(t, game.Human, moveMetrics[0].Player)
		require.Equal(t, game.Machine, moveMetrics[1].Player)
		require.Positive(t, moveMetrics[0].Nodes)
		require.True(t, e.State.Board.IsFull())
	})

	t.Run("search beats random play", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			random := agent.NewRandomAgent(tictactoe.State.LegalMoves, seed)
			perfect := agent.NewMinimaxAgent(tictactoe.BestMove, 9)
			e := LocalEngine(tictactoe.NewGame(game.Human, tictactoe.X), random, perfect, 0)

			outcome, _, _, err := e.Run(ctx)

			require.NoError(t, err)
			require.NotEqual(t, game.HumanWon, outcome, "Seed %d", seed)
		}
	})

	t.Run("observer sees every move", func(t *testing.T) {
		random := agent.NewRandomAgent(tictactoe.State.LegalMoves, 5)
		e := LocalEngine(tictactoe.NewGame(game.Machine, tictactoe.O), random, random, 0)
		var turns []int
		var players []game.Player
		e.Observe = func(turn int, player game.Player, move tictactoe.Move, state tictactoe.State) {
			turns = append(turns, turn)
			players = append(players, player)
			require.Equal(t, move.Mark, state.Board.At(move.Position))
		}

		_, gameMetric, _, err := e.Run(ctx)

		require.NoError(t, err)
		require.Len(t, turns, gameMetric.TotalMoves)
		require.Equal(t, 1, turns[0])
		require.Equal(t, game.Machine, players[0])
		require.Equal(t, game.Human, players[1])
	})

	t.Run("turn cap", func(t *testing.T) {
		random := agent.NewRandomAgent(checkers.State.LegalMoves, 3)
		e := LocalEngine(checkers.NewGame(game.Human, checkers.Blue), random, random, 4)

		outcome, gameMetric, _, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, game.Ongoing, outcome)
		require.Equal(t, 4, gameMetric.TotalMoves)
	})

	t.Run("illegal move stops the game", func(t *testing.T) {
		cheat := &scripted{moves: []tictactoe.Move{{Mark: tictactoe.O}}}
		honest := agent.NewRandomAgent(tictactoe.State.LegalMoves, 1)
		e := LocalEngine[tictactoe.State, tictactoe.Move](tictactoe.NewGame(game.Human, tictactoe.X), cheat, honest, 0)

		_, _, moveMetrics, err := e.Run(ctx)

		require.ErrorIs(t, err, tictactoe.ErrIllegalMove)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("agent failure stops the game", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		random := agent.NewRandomAgent(tictactoe.State.LegalMoves, 1)
		e := LocalEngine(tictactoe.NewGame(game.Machine, tictactoe.X), random, random, 0)

		_, _, _, err := e.Run(cancelled)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("both agents required", func(t *testing.T) {
		random := agent.NewRandomAgent(tictactoe.State.LegalMoves, 1)

		require.Panics(t, func() {
			LocalEngine[tictactoe.State, tictactoe.Move](tictactoe.NewGame(game.Human, tictactoe.X), random, nil, 0)
		})
	})
}
