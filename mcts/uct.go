package mcts

import "math"

// uctValue is the Upper Confidence bound for Trees score for child under
// parent, per §4.G: Q(k)/N(k) + c*sqrt(2*ln(N(parent))/N(k)).
func uctValue(parent, child *Node, exploration float64) float64 {
	if child.expandCount == 0 {
		return math.Inf(1)
	}
	exploitation := child.meanValue()
	explorationTerm := exploration * math.Sqrt(2*math.Log(float64(parent.expandCount))/float64(child.expandCount))
	return exploitation + explorationTerm
}

// bestChild returns the child of n maximizing the UCT score. n must have
// at least one child.
func bestChild(n *Node, exploration float64) *Node {
	var best *Node
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		score := uctValue(n, c, exploration)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// mostVisitedChild returns the child of n with the highest visit count,
// the move Search ultimately commits to once the time budget is spent.
func mostVisitedChild(n *Node) *Node {
	var best *Node
	bestCount := -1
	for _, c := range n.children {
		if c.expandCount > bestCount {
			bestCount = c.expandCount
			best = c
		}
	}
	return best
}
