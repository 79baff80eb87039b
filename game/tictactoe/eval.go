package tictactoe

import (
	"boardgames/game"
	"boardgames/searcher"
)

// Evaluation scores from the machine's point of view: +1 for a machine win,
// -1 for a human win, 0 for a draw or an unfinished board. Unfinished
// branches count as neutral because the whole tree fits in nine plies.
func Evaluation(s State) float64 {
	return EvaluationFor(game.Machine)(s)
}

// EvaluationFor scores terminal states for player
func EvaluationFor(player game.Player) searcher.Evaluate[State] {
	return func(s State) float64 {
		winner, ok := s.Outcome().Winner()
		switch {
		case !ok:
			return 0
		case winner == player:
			return 1
		default:
			return -1
		}
	}
}
