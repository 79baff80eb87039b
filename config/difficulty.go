package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGame       = errors.New("unknown game")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type Game string

const (
	TicTacToe Game = "tictactoe"
	Checkers  Game = "checkers"
)

func ParseGame(s string) (Game, error) {
	switch g := Game(strings.ToLower(s)); g {
	case TicTacToe, Checkers:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
}

// Difficulty is the strength a person picks before a game, translated to a
// search depth per game
type Difficulty string

const (
	Easy Difficulty = "EASY"
	Hard Difficulty = "HARD"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToUpper(s)); d {
	case Easy, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

var depths = map[Game]map[Difficulty]int{
	TicTacToe: {Easy: 2, Hard: 9},
	Checkers:  {Easy: 2, Hard: 6},
}

// Searches deeper than this are refused by the worker. The search cannot be
// interrupted, so the ceiling is what bounds its cost.
var maxDepths = map[Game]int{
	TicTacToe: 9,
	Checkers:  8,
}

// MaxDepth is the deepest search accepted for g, zero for an unknown game
func MaxDepth(g Game) int {
	return maxDepths[g]
}

// Depth returns the number of plies searched below each root move
func Depth(g Game, d Difficulty) (int, error) {
	byDifficulty, ok := depths[g]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGame, g)
	}
	depth, ok := byDifficulty[d]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return depth, nil
}
