package checkers

import (
	"math"

	"boardgames/searcher"
)

const (
	PieceValue    = 1.0
	PromotedValue = 3.0
)

// Evaluation scores a state for perspective: material balance while the game
// runs, zero for a stalled draw and infinite for a side without moves.
func Evaluation(perspective Color) searcher.Evaluate[State] {
	return func(s State) float64 {
		if s.stalled() {
			return 0
		}
		if !s.hasLegalMoves() {
			if s.NextColor == perspective {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		return material(s.Board, perspective) - material(s.Board, perspective.Invert())
	}
}

func material(b Board, color Color) float64 {
	plain, promoted := b.Count(color)
	return PieceValue*float64(plain) + PromotedValue*float64(promoted)
}
