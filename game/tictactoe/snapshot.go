package tictactoe

import (
	"errors"
	"fmt"

	"boardgames/game"
)

var ErrMalformedState = errors.New("malformed tic-tac-toe state")

// Snapshot is the wire form of a State used across the worker boundary
type Snapshot struct {
	Board      [][]Mark     `json:"board"`
	NextSymbol *Mark        `json:"nextSymbol"`
	NextPlayer *game.Player `json:"nextPlayer"`
}

func (s State) Snapshot() Snapshot {
	board := make([][]Mark, Size)
	for row := range board {
		board[row] = append([]Mark(nil), s.Board[row][:]...)
	}
	nextMark := s.NextMark
	nextPlayer := s.NextPlayer
	return Snapshot{
		Board:      board,
		NextSymbol: &nextMark,
		NextPlayer: &nextPlayer,
	}
}

// State rebuilds the state, failing on any missing or out of range field
func (s Snapshot) State() (State, error) {
	if s.NextSymbol == nil {
		return State{}, fmt.Errorf("%w: missing nextSymbol", ErrMalformedState)
	}
	if *s.NextSymbol != X && *s.NextSymbol != O {
		return State{}, fmt.Errorf("%w: nextSymbol must be X or O", ErrMalformedState)
	}
	if s.NextPlayer == nil {
		return State{}, fmt.Errorf("%w: missing nextPlayer", ErrMalformedState)
	}
	if len(s.Board) != Size {
		return State{}, fmt.Errorf("%w: board has %d rows, want %d", ErrMalformedState, len(s.Board), Size)
	}

	var board Board
	for row, cells := range s.Board {
		if len(cells) != Size {
			return State{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedState, row, len(cells), Size)
		}
		copy(board[row][:], cells)
	}
	return NewState(board, *s.NextSymbol, *s.NextPlayer), nil
}
