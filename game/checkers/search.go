package checkers

import (
	"fmt"

	"boardgames/searcher"

	"github.com/rs/zerolog/log"
)

// BestMove searches depth plies below every legal move and returns the one
// with the highest material outlook for the side to move. Ties, including all
// moves being lost, go to the first move in generation order. It reports false
// when the game is over.
func BestMove(s State, depth int, options ...searcher.Option) (Move, bool) {
	if s.stalled() {
		return Move{}, false
	}
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return Move{}, false
	}

	evaluate := Evaluation(s.NextColor)
	// Scores can be infinite, so the table is logged as text
	table := make([]string, 0, len(moves))
	best, bestScore := 0, 0.0
	for i, move := range moves {
		child := s.apply(move)
		// A chain that keeps the turn leaves this side maximizing
		maximizing := child.NextColor == s.NextColor
		score := searcher.Minimax(child, evaluate, depth, maximizing, options...)
		table = append(table, fmt.Sprintf("%v=%g", move, score))
		if i == 0 || score > bestScore {
			best, bestScore = i, score
		}
	}

	log.Debug().Str("game", "checkers").Int("depth", depth).Strs("scores", table).
		Msg("minimax has scored all root moves")

	return moves[best], true
}
