package game

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Player is the role that controls a side: the person at the board or the
// search. Both games alternate roles every turn.
type Player int

const (
	Human Player = iota
	Machine
)

func (p Player) Invert() Player {
	if p == Human {
		return Machine
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "HUMAN"
	case Machine:
		return "MACHINE"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

func (p Player) MarshalText() ([]byte, error) {
	if p != Human && p != Machine {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "HUMAN":
		*p = Human
	case "MACHINE":
		*p = Machine
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}
	return nil
}

// Outcome of a game from the point of view of the two roles
type Outcome int

const (
	Ongoing Outcome = iota
	HumanWon
	MachineWon
	Draw
)

// WonBy returns the outcome in which p is the winner
func WonBy(p Player) Outcome {
	if p == Human {
		return HumanWon
	}
	return MachineWon
}

func (o Outcome) IsOver() bool {
	return o != Ongoing
}

// Winner reports the winning role, false for a draw or an unfinished game
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case HumanWon:
		return Human, true
	case MachineWon:
		return Machine, true
	}
	return Human, false
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ONGOING"
	case HumanWon:
		return "HUMAN"
	case MachineWon:
		return "MACHINE"
	case Draw:
		return "DRAW"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
