package searcher

// Node is the contract a game state must satisfy to be searched. Children
// returns one independent successor per legal move of the side to move, in a
// stable order; it returns nothing for terminal states.
type Node[S any] interface {
	IsTerminal() bool
	Children() []S
}

// Evaluate scores a state from the perspective of the side that launched the
// search. Higher is better for that side.
type Evaluate[S any] func(S) float64
