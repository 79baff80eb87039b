package tictactoe

import (
	"boardgames/searcher"

	"github.com/rs/zerolog/log"
)

type scoredMove struct {
	Move  Move    `json:"move"`
	Score float64 `json:"score"`
}

// BestMove scores every empty cell by searching depth plies below it and
// returns the highest scoring one. Ties go to the first cell in row-major
// order. It reports false when the game is already over.
func BestMove(s State, depth int, options ...searcher.Option) (Move, bool) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return Move{}, false
	}

	evaluate := EvaluationFor(s.NextPlayer)
	table := make([]scoredMove, 0, len(moves))
	best := 0
	for i, move := range moves {
		child := s.place(move.Position)
		// The opponent moves next and minimizes the mover's score
		score := searcher.Minimax(child, evaluate, depth, false, options...)
		table = append(table, scoredMove{Move: move, Score: score})
		if score > table[best].Score {
			best = i
		}
	}

	log.Debug().Str("game", "tictactoe").Int("depth", depth).Interface("scores", table).
		Msg("minimax has scored all root moves")

	return table[best].Move, true
}
