package searcher

import "math"

type Option func(s *search)

type search struct {
	pruning bool
	metrics Collector
}

// WithoutPruning disables alpha-beta cutoffs. The score is unchanged, only
// more of the tree is visited.
func WithoutPruning() Option {
	return func(s *search) {
		s.pruning = false
	}
}

// WithMetrics records node, leaf and cutoff counts into collector
func WithMetrics(collector Collector) Option {
	return func(s *search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func newSearch(options []Option) *search {
	s := &search{ // Default values
		pruning: true,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Minimax scores state by depth-limited minimax search with alpha-beta
// pruning. At depth 0 or on a terminal state it returns evaluate(state)
// without exploring any move.
func Minimax[S Node[S]](state S, evaluate Evaluate[S], depth int, maximizing bool, options ...Option) float64 {
	s := newSearch(options)
	return minimax(s, state, evaluate, depth, maximizing, math.Inf(-1), math.Inf(1))
}

func minimax[S Node[S]](s *search, state S, evaluate Evaluate[S], depth int, maximizing bool, alpha, beta float64) float64 {
	s.metrics.AddNode()

	if depth <= 0 || state.IsTerminal() {
		s.metrics.AddLeaf()
		return evaluate(state)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, child := range state.Children() {
			value := minimax(s, child, evaluate, depth-1, false, alpha, beta)
			best = math.Max(best, value)
			alpha = math.Max(alpha, best)
			if s.pruning && beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	worst := math.Inf(1)
	for _, child := range state.Children() {
		value := minimax(s, child, evaluate, depth-1, true, alpha, beta)
		worst = math.Min(worst, value)
		beta = math.Min(beta, worst)
		if s.pruning && beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return worst
}
