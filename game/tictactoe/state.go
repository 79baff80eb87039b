package tictactoe

import (
	"errors"
	"fmt"

	"boardgames/game"
	"boardgames/geometry"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// Move places Mark on Position
type Move struct {
	Position geometry.Vector2D `json:"position"`
	Mark     Mark              `json:"mark"`
}

// State owns its board: the array is copied whenever the state is.
type State struct {
	Board      Board
	NextMark   Mark
	NextPlayer game.Player
}

func NewState(board Board, nextMark Mark, nextPlayer game.Player) State {
	return State{
		Board:      board,
		NextMark:   nextMark,
		NextPlayer: nextPlayer,
	}
}

// NewGame starts on an empty board. humanMark is the symbol the human plays;
// the starting player places the first mark.
func NewGame(startPlayer game.Player, humanMark Mark) State {
	nextMark := humanMark
	if startPlayer == game.Machine {
		nextMark = humanMark.Invert()
	}
	return NewState(Board{}, nextMark, startPlayer)
}

func (s State) Player() game.Player {
	return s.NextPlayer
}

func (s State) IsTerminal() bool {
	return s.Board.Termination() != TerminationNone
}

func (s State) Outcome() game.Outcome {
	t := s.Board.Termination()
	switch t {
	case TerminationNone:
		return game.Ongoing
	case TerminationDraw:
		return game.Draw
	}
	if t.Mark() == s.NextMark {
		return game.WonBy(s.NextPlayer)
	}
	return game.WonBy(s.NextPlayer.Invert())
}

func (s State) LegalMoves() []Move {
	if s.IsTerminal() {
		return nil
	}
	cells := s.Board.EmptyCells()
	moves := make([]Move, 0, len(cells))
	for _, cell := range cells {
		moves = append(moves, Move{Position: cell, Mark: s.NextMark})
	}
	return moves
}

// Play returns the successor state. The receiver is left untouched.
func (s State) Play(move Move) (State, error) {
	if s.IsTerminal() {
		return State{}, ErrGameOver
	}
	if move.Mark != s.NextMark {
		return State{}, fmt.Errorf("%w: %v is not on move", ErrIllegalMove, move.Mark)
	}
	if !move.Position.Within(Size) {
		return State{}, fmt.Errorf("%w: %v is off the board", ErrIllegalMove, move.Position)
	}
	if s.Board.At(move.Position) != Empty {
		return State{}, fmt.Errorf("%w: %v is occupied", ErrIllegalMove, move.Position)
	}
	return s.place(move.Position), nil
}

func (s State) place(p geometry.Vector2D) State {
	next := s
	next.Board[p.Row][p.Column] = s.NextMark
	next.NextMark = s.NextMark.Invert()
	next.NextPlayer = s.NextPlayer.Invert()
	return next
}

// Children yields one successor per empty cell in row-major order
func (s State) Children() []State {
	if s.IsTerminal() {
		return nil
	}
	cells := s.Board.EmptyCells()
	children := make([]State, 0, len(cells))
	for _, cell := range cells {
		children = append(children, s.place(cell))
	}
	return children
}
