package engine

import (
	"boardgames/game"
)

// State is a position the engine can advance. Both games satisfy it with
// their value-typed State.
type State[S, M any] interface {
	Player() game.Player
	Outcome() game.Outcome
	Play(move M) (S, error)
}
