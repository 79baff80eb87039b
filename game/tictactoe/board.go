package tictactoe

import (
	"fmt"
	"strings"

	"boardgames/geometry"
)

const Size = 3

type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) Invert() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return m
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "-"
}

func (m Mark) MarshalJSON() ([]byte, error) {
	if m == Empty {
		return []byte("null"), nil
	}
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Mark) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*m = Empty
	case `"X"`:
		*m = X
	case `"O"`:
		*m = O
	default:
		return fmt.Errorf("unknown symbol %s", data)
	}
	return nil
}

// Termination describes whether and how a board is finished
type Termination int

const (
	TerminationNone Termination = iota
	TerminationCrossWon
	TerminationNoughtWon
	TerminationDraw
)

// Mark returns the winning mark, Empty for a draw or an unfinished board
func (t Termination) Mark() Mark {
	switch t {
	case TerminationCrossWon:
		return X
	case TerminationNoughtWon:
		return O
	}
	return Empty
}

// horizontal, vertical and diagonal lines
var lines = [8][3]geometry.Vector2D{
	{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}},
	{{Row: 1, Column: 0}, {Row: 1, Column: 1}, {Row: 1, Column: 2}},
	{{Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 2, Column: 0}},
	{{Row: 0, Column: 1}, {Row: 1, Column: 1}, {Row: 2, Column: 1}},
	{{Row: 0, Column: 2}, {Row: 1, Column: 2}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 2, Column: 0}, {Row: 1, Column: 1}, {Row: 0, Column: 2}},
}

// Board is the 3x3 grid. It is a value type: assigning a Board copies it.
type Board [Size][Size]Mark

func (b Board) At(p geometry.Vector2D) Mark {
	return b[p.Row][p.Column]
}

func (b Board) IsFull() bool {
	for _, row := range b {
		for _, mark := range row {
			if mark == Empty {
				return false
			}
		}
	}
	return true
}

// Termination checks the three rows, three columns and two diagonals for a
// completed line before declaring a full board a draw.
func (b Board) Termination() Termination {
	for _, line := range lines {
		first := b.At(line[0])
		if first != Empty && first == b.At(line[1]) && first == b.At(line[2]) {
			if first == X {
				return TerminationCrossWon
			}
			return TerminationNoughtWon
		}
	}
	if b.IsFull() {
		return TerminationDraw
	}
	return TerminationNone
}

// EmptyCells lists the free cells in row-major order
func (b Board) EmptyCells() []geometry.Vector2D {
	cells := make([]geometry.Vector2D, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for column := 0; column < Size; column++ {
			if b[row][column] == Empty {
				cells = append(cells, geometry.Vector2D{Row: row, Column: column})
			}
		}
	}
	return cells
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, mark := range row {
			sb.WriteString(mark.String())
		}
	}
	return sb.String()
}
