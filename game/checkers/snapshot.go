package checkers

import (
	"errors"
	"fmt"

	"boardgames/game"
	"boardgames/geometry"
)

var ErrMalformedState = errors.New("malformed checkers state")

// Snapshot is the wire form of a State used across the worker boundary. Empty
// cells are null.
type Snapshot struct {
	Pieces       [][]*Piece         `json:"pieces"`
	NextColor    *Color             `json:"nextColor"`
	NextPlayer   *game.Player       `json:"nextPlayer"`
	LastCapture  *int               `json:"lastCapture"`
	MustMoveNext *geometry.Vector2D `json:"mustMoveNext,omitempty"`
}

func (s State) Snapshot() Snapshot {
	pieces := make([][]*Piece, Size)
	for row := range pieces {
		pieces[row] = make([]*Piece, Size)
		for column, piece := range s.Board[row] {
			if !piece.IsEmpty() {
				p := piece
				pieces[row][column] = &p
			}
		}
	}
	nextColor := s.NextColor
	nextPlayer := s.NextPlayer
	lastCapture := s.TurnsSinceCapture
	snapshot := Snapshot{
		Pieces:      pieces,
		NextColor:   &nextColor,
		NextPlayer:  &nextPlayer,
		LastCapture: &lastCapture,
	}
	if s.MustMove != nil {
		mustMove := *s.MustMove
		snapshot.MustMoveNext = &mustMove
	}
	return snapshot
}

// State rebuilds the state, failing on any missing or out of range field
func (s Snapshot) State() (State, error) {
	if s.NextColor == nil {
		return State{}, fmt.Errorf("%w: missing nextColor", ErrMalformedState)
	}
	if *s.NextColor != Blue && *s.NextColor != Pink {
		return State{}, fmt.Errorf("%w: nextColor must be BLUE or PINK", ErrMalformedState)
	}
	if s.NextPlayer == nil {
		return State{}, fmt.Errorf("%w: missing nextPlayer", ErrMalformedState)
	}
	if s.LastCapture == nil {
		return State{}, fmt.Errorf("%w: missing lastCapture", ErrMalformedState)
	}
	if *s.LastCapture < 0 {
		return State{}, fmt.Errorf("%w: lastCapture is negative", ErrMalformedState)
	}
	if len(s.Pieces) != Size {
		return State{}, fmt.Errorf("%w: board has %d rows, want %d", ErrMalformedState, len(s.Pieces), Size)
	}

	var board Board
	for row, cells := range s.Pieces {
		if len(cells) != Size {
			return State{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedState, row, len(cells), Size)
		}
		for column, piece := range cells {
			if piece == nil {
				continue
			}
			if piece.Color != Blue && piece.Color != Pink {
				return State{}, fmt.Errorf("%w: piece on (%d,%d) has no color", ErrMalformedState, row, column)
			}
			board[row][column] = *piece
		}
	}

	state := State{
		Board:             board,
		NextColor:         *s.NextColor,
		NextPlayer:        *s.NextPlayer,
		TurnsSinceCapture: *s.LastCapture,
	}
	if s.MustMoveNext != nil {
		mustMove := *s.MustMoveNext
		if board.At(mustMove).Color != state.NextColor {
			return State{}, fmt.Errorf("%w: mustMoveNext %v holds no %v piece", ErrMalformedState, mustMove, state.NextColor)
		}
		state.MustMove = &mustMove
	}
	return state, nil
}
