package geometry

import "fmt"

// Vector2D is a board coordinate or an offset between two coordinates.
type Vector2D struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

var (
	Zero      = Vector2D{Row: 0, Column: 0}
	NorthEast = Vector2D{Row: 1, Column: 1}
	NorthWest = Vector2D{Row: 1, Column: -1}
	SouthEast = Vector2D{Row: -1, Column: 1}
	SouthWest = Vector2D{Row: -1, Column: -1}
)

// Diagonals lists the four diagonal steps in a fixed order
func Diagonals() []Vector2D {
	return []Vector2D{NorthEast, NorthWest, SouthEast, SouthWest}
}

func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{Row: v.Row + other.Row, Column: v.Column + other.Column}
}

func (v Vector2D) Subtract(other Vector2D) Vector2D {
	return Vector2D{Row: v.Row - other.Row, Column: v.Column - other.Column}
}

func (v Vector2D) Scale(lambda int) Vector2D {
	return Vector2D{Row: lambda * v.Row, Column: lambda * v.Column}
}

func (v Vector2D) Equals(other Vector2D) bool {
	return v == other
}

// Within reports whether v lies on a size x size board
func (v Vector2D) Within(size int) bool {
	return v.Row >= 0 && v.Row < size && v.Column >= 0 && v.Column < size
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%d,%d)", v.Row, v.Column)
}
