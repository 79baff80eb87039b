package searcher

// finiteNode encodes a small hand-built game tree:
//
//	A -> B, C
//	B -> D, E
//	E -> F, G, H
type finiteNode struct {
	label string
}

func (n finiteNode) IsTerminal() bool {
	switch n.label {
	case "C", "D", "F", "G", "H":
		return true
	}
	return false
}

func (n finiteNode) Children() []finiteNode {
	switch n.label {
	case "A":
		return []finiteNode{{"B"}, {"C"}}
	case "B":
		return []finiteNode{{"D"}, {"E"}}
	case "E":
		return []finiteNode{{"F"}, {"G"}, {"H"}}
	}
	return nil
}

func evaluationTable(overrides map[string]float64) Evaluate[finiteNode] {
	values := map[string]float64{"A": 0, "B": 3, "C": -1, "D": 2, "E": 5, "F": -1, "G": 1, "H": 50}
	for label, value := range overrides {
		values[label] = value
	}
	return func(n finiteNode) float64 {
		return values[n.label]
	}
}

// randomNode is a generated tree with values on every node, used to compare
// pruned and exhaustive search.
type randomNode struct {
	value    float64
	children []*randomNode
}

func (n *randomNode) IsTerminal() bool {
	return len(n.children) == 0
}

func (n *randomNode) Children() []*randomNode {
	return n.children
}

func evaluateRandomNode(n *randomNode) float64 {
	return n.value
}
