package checkers

import (
	"boardgames/geometry"

	"golang.org/x/exp/slices"
)

// LegalMoves lists every move available to the side to move. Captures are
// mandatory: when any piece can capture, only complete capture chains are
// returned. A pending MustMove restricts generation to that piece.
func (s State) LegalMoves() []Move {
	if s.TurnsSinceCapture >= StallLimit {
		return nil
	}

	var captures, steps []Move
	for row := 0; row < Size; row++ {
		for column := 0; column < Size; column++ {
			cell := geometry.Vector2D{Row: row, Column: column}
			if s.Board.At(cell).Color != s.NextColor {
				continue
			}
			if s.MustMove != nil && *s.MustMove != cell {
				continue
			}
			captures = append(captures, s.Board.captureChains(cell)...)
			if len(captures) == 0 {
				steps = append(steps, s.Board.steps(cell)...)
			}
		}
	}

	moves := steps
	if len(captures) > 0 {
		moves = captures
	}
	s.Board.order(moves)
	return moves
}

func (s State) hasLegalMoves() bool {
	return len(s.LegalMoves()) > 0
}

func (b Board) steps(start geometry.Vector2D) []Move {
	var moves []Move
	for _, direction := range b.At(start).Directions() {
		end := start.Add(direction)
		if end.Within(Size) && b.At(end).IsEmpty() {
			moves = append(moves, NewStep(start, end))
		}
	}
	return moves
}

// captureChains returns every maximal capture chain of the piece on start.
// Captured pieces stay on the board until the chain completes, so they block
// landings, and no piece can be jumped twice. A landing cell is never revisited
// within a chain.
func (b Board) captureChains(start geometry.Vector2D) []Move {
	piece := b.At(start)
	var chains []Move

	var extend func(path, captures []geometry.Vector2D)
	extend = func(path, captures []geometry.Vector2D) {
		from := path[len(path)-1]
		extended := false
		for _, direction := range piece.Directions() {
			over := from.Add(direction)
			landing := from.Add(direction.Scale(2))
			if !landing.Within(Size) {
				continue
			}
			victim := b.At(over)
			if victim.IsEmpty() || victim.Color == piece.Color {
				continue
			}
			if containsCell(captures, over) || containsCell(path, landing) || !b.At(landing).IsEmpty() {
				continue
			}
			extended = true
			extend(append(slices.Clone(path), landing), append(slices.Clone(captures), over))
		}
		if !extended && len(captures) > 0 {
			chains = append(chains, Move{Path: path, Captures: captures})
		}
	}

	extend([]geometry.Vector2D{start}, nil)
	return chains
}

// order sorts moves that capture more, then moves that promote, to the front.
// The sort is stable so generation order breaks ties.
func (b Board) order(moves []Move) {
	rank := func(m Move) int {
		r := 2 * len(m.Captures)
		if b.At(m.Start()).promotesAt(m.End()) {
			r++
		}
		return r
	}
	slices.SortStableFunc(moves, func(a, c Move) int {
		return rank(c) - rank(a)
	})
}
