package checkers

import (
	"testing"

	"boardgames/geometry"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalMoves(t *testing.T) {
	t.Run("opening moves", func(t *testing.T) {
		for _, color := range []Color{Blue, Pink} {
			moves := stateOf(NewBoard(), color).LegalMoves()

			require.Len(t, moves, 7)
			for _, move := range moves {
				require.False(t, move.IsCapture())
				require.Equal(t, color, NewBoard().At(move.Start()).Color)
			}
		}
	})

	t.Run("capture is mandatory", func(t *testing.T) {
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(2, 2): blue,
			cell(3, 3): pink,
			cell(0, 6): blue,
		}), Blue)

		moves := s.LegalMoves()

		require.Equal(t, []Move{{
			Path:     []geometry.Vector2D{cell(2, 2), cell(4, 4)},
			Captures: []geometry.Vector2D{cell(3, 3)},
		}}, moves)
	})

	t.Run("only complete chains are listed", func(t *testing.T) {
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(0, 0): blue,
			cell(1, 1): pink,
			cell(3, 3): pink,
		}), Blue)

		moves := s.LegalMoves()

		require.Equal(t, []Move{{
			Path:     []geometry.Vector2D{cell(0, 0), cell(2, 2), cell(4, 4)},
			Captures: []geometry.Vector2D{cell(1, 1), cell(3, 3)},
		}}, moves)
	})

	t.Run("branching chains", func(t *testing.T) {
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(0, 2): blue,
			cell(1, 3): pink,
			cell(3, 5): pink,
			cell(3, 3): pink,
		}), Blue)

		moves := s.LegalMoves()

		require.ElementsMatch(t, []Move{
			{
				Path:     []geometry.Vector2D{cell(0, 2), cell(2, 4), cell(4, 6)},
				Captures: []geometry.Vector2D{cell(1, 3), cell(3, 5)},
			},
			{
				Path:     []geometry.Vector2D{cell(0, 2), cell(2, 4), cell(4, 2)},
				Captures: []geometry.Vector2D{cell(1, 3), cell(3, 3)},
			},
		}, moves)
	})

	t.Run("plain pieces only move forward", func(t *testing.T) {
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(4, 4): blue,
			cell(3, 3): pink,
		}), Blue)

		require.ElementsMatch(t, []Move{
			NewStep(cell(4, 4), cell(5, 5)),
			NewStep(cell(4, 4), cell(5, 3)),
		}, s.LegalMoves())
	})

	t.Run("promoted pieces move and capture backwards", func(t *testing.T) {
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(4, 4): blueKing,
		}), Blue)
		require.Len(t, s.LegalMoves(), 4)

		s.Board.set(cell(3, 3), pink)
		require.Equal(t, []Move{{
			Path:     []geometry.Vector2D{cell(4, 4), cell(2, 2)},
			Captures: []geometry.Vector2D{cell(3, 3)},
		}}, s.LegalMoves())
	})

	t.Run("chains never revisit a cell or capture twice", func(t *testing.T) {
		// Four pinks around a diamond the king could otherwise circle
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(2, 4): blueKing,
			cell(3, 5): pink,
			cell(5, 5): pink,
			cell(5, 3): pink,
			cell(3, 3): pink,
		}), Blue)

		moves := s.LegalMoves()

		require.Len(t, moves, 2)
		for _, move := range moves {
			require.Len(t, move.Captures, 3)
			requireDistinct(t, move.Path)
			requireDistinct(t, move.Captures)
		}
	})

	t.Run("a pending chain restricts the mover", func(t *testing.T) {
		mustMove := cell(2, 2)
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(2, 2): blue,
			cell(3, 3): pink,
			cell(2, 6): blue,
			cell(3, 7): pink,
			cell(3, 5): pink,
		}), Blue)
		s.MustMove = &mustMove

		moves := s.LegalMoves()

		require.NotEmpty(t, moves)
		for _, move := range moves {
			require.Equal(t, mustMove, move.Start())
		}
	})

	t.Run("capturing and promoting moves come first", func(t *testing.T) {
		s := stateOf(boardWith(map[geometry.Vector2D]Piece{
			cell(2, 0): blue,
			cell(6, 4): blue,
		}), Blue)

		moves := s.LegalMoves()

		require.Len(t, moves, 3)
		require.Equal(t, cell(6, 4), moves[0].Start())
		require.Equal(t, cell(6, 4), moves[1].Start())
		require.Equal(t, NewStep(cell(2, 0), cell(3, 1)), moves[2])
	})
}

func TestRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 30; i++ {
		s := randomStart(rng)
		for ply := 0; ply < 300 && !s.IsTerminal(); ply++ {
			moves := s.LegalMoves()
			require.NotEmpty(t, moves)
			requireWellFormedMoves(t, s, moves)

			move := moves[rng.Intn(len(moves))]
			before := s.Board
			piece := s.Board.At(move.Start())
			opponentBefore := total(s.Board, s.NextColor.Invert())

			next, err := s.Play(move)
			require.NoError(t, err)

			require.Equal(t, before, s.Board, "Play must not touch the receiver")
			require.Equal(t, opponentBefore-len(move.Captures), total(next.Board, s.NextColor.Invert()))
			require.True(t, s.Board.At(move.Start()).Color == s.NextColor)
			require.True(t, next.Board.At(move.Start()).IsEmpty())
			if piece.promotesAt(move.End()) {
				require.True(t, next.Board.At(move.End()).Promoted)
			}
			if move.IsCapture() {
				require.Zero(t, next.TurnsSinceCapture)
			} else {
				require.Equal(t, s.TurnsSinceCapture+1, next.TurnsSinceCapture)
				require.Equal(t, s.NextColor.Invert(), next.NextColor)
			}
			if next.MustMove != nil {
				require.Equal(t, s.NextColor, next.NextColor)
				require.Equal(t, move.End(), *next.MustMove)
			}
			s = next
		}
		if s.IsTerminal() {
			require.True(t, s.Outcome().IsOver())
		}
	}
}

// randomStart opens a game with a random side to move
func randomStart(rng *rand.Rand) State {
	color := Blue
	if rng.Intn(2) == 1 {
		color = Pink
	}
	return stateOf(NewBoard(), color)
}

func requireWellFormedMoves(t *testing.T, s State, moves []Move) {
	t.Helper()
	capturing := moves[0].IsCapture()
	for _, move := range moves {
		require.True(t, move.wellFormed(), "Move %v", move)
		require.Equal(t, capturing, move.IsCapture(), "Captures are mandatory")
		require.Equal(t, s.NextColor, s.Board.At(move.Start()).Color)
		if s.MustMove != nil {
			require.Equal(t, *s.MustMove, move.Start())
		}
		if !move.IsCapture() {
			step := move.End().Subtract(move.Start())
			require.Contains(t, geometry.Diagonals(), step)
			continue
		}
		requireDistinct(t, move.Captures)
		for i, captured := range move.Captures {
			jump := move.Path[i+1].Subtract(move.Path[i])
			require.Contains(t, geometry.Diagonals(), geometry.Vector2D{Row: jump.Row / 2, Column: jump.Column / 2})
			require.Equal(t, 2, abs(jump.Row))
			require.Equal(t, move.Path[i].Add(geometry.Vector2D{Row: jump.Row / 2, Column: jump.Column / 2}), captured)
			require.Equal(t, s.NextColor.Invert(), s.Board.At(captured).Color)
		}
	}
}

func requireDistinct(t *testing.T, cells []geometry.Vector2D) {
	t.Helper()
	seen := map[geometry.Vector2D]bool{}
	for _, c := range cells {
		require.False(t, seen[c], "%v appears twice in %v", c, cells)
		seen[c] = true
	}
}

func total(b Board, color Color) int {
	plain, promoted := b.Count(color)
	return plain + promoted
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
