package checkers

import (
	"errors"
	"fmt"

	"boardgames/geometry"
)

var ErrUnknownColor = errors.New("unknown color")

type Color int

const (
	NoColor Color = iota
	Blue
	Pink
)

func (c Color) Invert() Color {
	switch c {
	case Blue:
		return Pink
	case Pink:
		return Blue
	}
	return c
}

// Forward lists the diagonal steps a non-promoted piece of this color may take.
// Blue starts on the low rows and moves north, Pink moves south.
func (c Color) Forward() []geometry.Vector2D {
	if c == Blue {
		return []geometry.Vector2D{geometry.NorthEast, geometry.NorthWest}
	}
	return []geometry.Vector2D{geometry.SouthEast, geometry.SouthWest}
}

// PromotionRow is the farthest row from the color's starting side
func (c Color) PromotionRow() int {
	if c == Blue {
		return Size - 1
	}
	return 0
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "BLUE"
	case Pink:
		return "PINK"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) MarshalText() ([]byte, error) {
	if c != Blue && c != Pink {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "BLUE":
		*c = Blue
	case "PINK":
		*c = Pink
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColor, text)
	}
	return nil
}

// Piece occupies a cell. The zero Piece is an empty cell.
type Piece struct {
	Color    Color `json:"color"`
	Promoted bool  `json:"promoted"`
}

func (p Piece) IsEmpty() bool {
	return p.Color == NoColor
}

// Directions a piece may move or capture in
func (p Piece) Directions() []geometry.Vector2D {
	if p.Promoted {
		return geometry.Diagonals()
	}
	return p.Color.Forward()
}

// promotesAt reports whether landing on cell promotes the piece
func (p Piece) promotesAt(cell geometry.Vector2D) bool {
	return !p.Promoted && cell.Row == p.Color.PromotionRow()
}

func (p Piece) symbol() rune {
	switch {
	case p.Color == Blue && p.Promoted:
		return 'B'
	case p.Color == Blue:
		return 'b'
	case p.Color == Pink && p.Promoted:
		return 'P'
	case p.Color == Pink:
		return 'p'
	}
	return '.'
}
