package checkers

import (
	"strings"

	"boardgames/geometry"
)

const (
	Size = 8
	// Rows filled with pieces on each side at the start
	startingRows = 3
)

// Board is the 8x8 grid indexed [row][column]. It is a value type, so a copied
// State never shares cells with its origin.
type Board [Size][Size]Piece

// NewBoard returns the starting layout: Blue on rows 0-2, Pink on rows 5-7,
// every piece on a dark cell, (row+column) even.
func NewBoard() Board {
	var b Board
	for row := 0; row < Size; row++ {
		for column := 0; column < Size; column++ {
			if !IsDark(geometry.Vector2D{Row: row, Column: column}) {
				continue
			}
			switch {
			case row < startingRows:
				b[row][column] = Piece{Color: Blue}
			case row >= Size-startingRows:
				b[row][column] = Piece{Color: Pink}
			}
		}
	}
	return b
}

func IsDark(cell geometry.Vector2D) bool {
	return (cell.Row+cell.Column)%2 == 0
}

// At returns the piece on cell, the empty piece for off-board cells
func (b Board) At(cell geometry.Vector2D) Piece {
	if !cell.Within(Size) {
		return Piece{}
	}
	return b[cell.Row][cell.Column]
}

func (b *Board) set(cell geometry.Vector2D, piece Piece) {
	b[cell.Row][cell.Column] = piece
}

// Count returns the number of plain and promoted pieces of color
func (b Board) Count(color Color) (plain, promoted int) {
	for _, row := range b {
		for _, piece := range row {
			if piece.Color != color {
				continue
			}
			if piece.Promoted {
				promoted++
			} else {
				plain++
			}
		}
	}
	return plain, promoted
}

// String draws row 7 at the top
func (b Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		for column := 0; column < Size; column++ {
			sb.WriteRune(b[row][column].symbol())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
