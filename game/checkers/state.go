package checkers

import (
	"errors"
	"fmt"

	"boardgames/game"
	"boardgames/geometry"
)

// StallLimit is the number of consecutive turns without a capture after which
// the game is drawn
const StallLimit = 50

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// State is a checkers position. MustMove is set while a capture chain is
// being played one jump at a time: the same side stays on move and only the
// piece on MustMove may continue.
type State struct {
	Board             Board
	NextColor         Color
	NextPlayer        game.Player
	TurnsSinceCapture int
	MustMove          *geometry.Vector2D
}

// NewGame starts from the standard layout. humanColor is the color the human
// plays; startPlayer moves first.
func NewGame(startPlayer game.Player, humanColor Color) State {
	nextColor := humanColor
	if startPlayer == game.Machine {
		nextColor = humanColor.Invert()
	}
	return State{
		Board:      NewBoard(),
		NextColor:  nextColor,
		NextPlayer: startPlayer,
	}
}

func (s State) Player() game.Player {
	return s.NextPlayer
}

func (s State) stalled() bool {
	return s.TurnsSinceCapture >= StallLimit
}

func (s State) IsTerminal() bool {
	return s.stalled() || !s.hasLegalMoves()
}

// Outcome reports a draw once the stall limit is reached, otherwise a side with
// no legal move has lost
func (s State) Outcome() game.Outcome {
	if s.stalled() {
		return game.Draw
	}
	if !s.hasLegalMoves() {
		return game.WonBy(s.NextPlayer.Invert())
	}
	return game.Ongoing
}

// Play applies a legal move or the leading jumps of a legal capture chain and
// returns the successor. The receiver is left untouched.
func (s State) Play(move Move) (State, error) {
	if s.IsTerminal() {
		return State{}, ErrGameOver
	}
	if !move.wellFormed() {
		return State{}, fmt.Errorf("%w: malformed move %v", ErrIllegalMove, move)
	}
	if piece := s.Board.At(move.Start()); piece.Color != s.NextColor {
		return State{}, fmt.Errorf("%w: no %v piece on %v", ErrIllegalMove, s.NextColor, move.Start())
	}
	for _, legal := range s.LegalMoves() {
		if move.Equal(legal) || move.isLegPrefixOf(legal) {
			return s.apply(move), nil
		}
	}
	return State{}, fmt.Errorf("%w: %v", ErrIllegalMove, move)
}

// apply performs move without validating it
func (s State) apply(move Move) State {
	next := s
	start, end := move.Start(), move.End()
	piece := next.Board.At(start)
	next.Board.set(start, Piece{})
	for _, captured := range move.Captures {
		next.Board.set(captured, Piece{})
	}
	if piece.promotesAt(end) {
		piece.Promoted = true
	}
	next.Board.set(end, piece)

	if move.IsCapture() {
		next.TurnsSinceCapture = 0
		if len(next.Board.captureChains(end)) > 0 {
			next.MustMove = &end
			return next
		}
	} else {
		next.TurnsSinceCapture++
	}
	next.MustMove = nil
	next.NextColor = s.NextColor.Invert()
	next.NextPlayer = s.NextPlayer.Invert()
	return next
}

// Children yields one successor per legal move. A move that leaves the same
// side on move is replaced by the positions reachable by finishing it, so
// every child has the opponent on move.
func (s State) Children() []State {
	if s.stalled() {
		return nil
	}
	moves := s.LegalMoves()
	children := make([]State, 0, len(moves))
	for _, move := range moves {
		child := s.apply(move)
		if child.NextColor == s.NextColor {
			children = append(children, child.Children()...)
			continue
		}
		children = append(children, child)
	}
	return children
}
