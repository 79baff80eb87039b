package checkers

import (
	"strings"

	"boardgames/geometry"
)

// Move is a standard step or a capture chain. Path holds every cell the piece
// visits, start first. A standard move has a two-cell path and no captures; a
// capture chain has one captured cell per jump, so len(Path) ==
// len(Captures)+1.
type Move struct {
	Path     []geometry.Vector2D `json:"path"`
	Captures []geometry.Vector2D `json:"captures,omitempty"`
}

func NewStep(start, end geometry.Vector2D) Move {
	return Move{Path: []geometry.Vector2D{start, end}}
}

func (m Move) Start() geometry.Vector2D {
	return m.Path[0]
}

func (m Move) End() geometry.Vector2D {
	return m.Path[len(m.Path)-1]
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

func (m Move) Equal(other Move) bool {
	return equalCells(m.Path, other.Path) && equalCells(m.Captures, other.Captures)
}

// isLegPrefixOf reports whether m is the first jumps of the capture chain other
func (m Move) isLegPrefixOf(other Move) bool {
	if !m.IsCapture() || len(m.Captures) > len(other.Captures) {
		return false
	}
	return equalCells(m.Path, other.Path[:len(m.Path)]) &&
		equalCells(m.Captures, other.Captures[:len(m.Captures)])
}

// wellFormed checks the shape of the move, not its legality
func (m Move) wellFormed() bool {
	if len(m.Path) < 2 {
		return false
	}
	if !m.IsCapture() {
		return len(m.Path) == 2
	}
	return len(m.Path) == len(m.Captures)+1
}

func (m Move) String() string {
	cells := make([]string, len(m.Path))
	for i, cell := range m.Path {
		cells[i] = cell.String()
	}
	separator := "-"
	if m.IsCapture() {
		separator = "x"
	}
	return strings.Join(cells, separator)
}

func equalCells(a, b []geometry.Vector2D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsCell(cells []geometry.Vector2D, cell geometry.Vector2D) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
