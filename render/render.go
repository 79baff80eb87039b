package render

import (
	"fmt"
	"io"
	"strings"

	"boardgames/game/checkers"
	"boardgames/game/tictactoe"
	"boardgames/geometry"

	"github.com/muesli/termenv"
)

// Renderer draws boards for a terminal. Colours degrade to the profile of
// the output, plain text for a non-terminal writer.
type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) blue(s string) string {
	return r.out.String(s).Foreground(r.out.Color("12")).Bold().String()
}

func (r *Renderer) pink(s string) string {
	return r.out.String(s).Foreground(r.out.Color("13")).Bold().String()
}

func (r *Renderer) TicTacToe(s tictactoe.State) string {
	var sb strings.Builder
	for row := 0; row < tictactoe.Size; row++ {
		cells := make([]string, tictactoe.Size)
		for column := range cells {
			switch mark := s.Board[row][column]; mark {
			case tictactoe.X:
				cells[column] = r.blue("X")
			case tictactoe.O:
				cells[column] = r.pink("O")
			default:
				cells[column] = " "
			}
		}
		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < tictactoe.Size-1 {
			sb.WriteString("---+---+---\n")
		}
	}
	fmt.Fprintf(&sb, "%v (%v) to move", s.NextMark, s.NextPlayer)
	return sb.String()
}

// Checkers draws row 7 at the top. A piece that must continue its capture is
// underlined.
func (r *Renderer) Checkers(s checkers.State) string {
	var sb strings.Builder
	for row := checkers.Size - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row)
		for column := 0; column < checkers.Size; column++ {
			cell := geometry.Vector2D{Row: row, Column: column}
			sb.WriteString(r.checkersCell(s, cell))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  01234567\n")
	fmt.Fprintf(&sb, "%v (%v) to move, %d turns since capture", s.NextColor, s.NextPlayer, s.TurnsSinceCapture)
	return sb.String()
}

func (r *Renderer) checkersCell(s checkers.State, cell geometry.Vector2D) string {
	piece := s.Board.At(cell)
	if piece.IsEmpty() {
		if checkers.IsDark(cell) {
			return "."
		}
		return " "
	}

	letter := "b"
	if piece.Color == checkers.Pink {
		letter = "p"
	}
	if piece.Promoted {
		letter = strings.ToUpper(letter)
	}

	style := r.out.String(letter).Bold()
	if piece.Color == checkers.Blue {
		style = style.Foreground(r.out.Color("12"))
	} else {
		style = style.Foreground(r.out.Color("13"))
	}
	if s.MustMove != nil && *s.MustMove == cell {
		style = style.Underline()
	}
	return style.String()
}
