package mcts

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tree is a thin handle over a search's root node, exposing size and
// depth introspection. Grounded on original_source's Node::treeSize,
// Node::treeDepth, and Node::printStats, which the distilled spec omits
// but which are in-scope introspection rather than the excluded DOT
// emission.
type Tree struct {
	root *Node
}

// Size returns the number of nodes in the tree, root included.
func (t *Tree) Size() int {
	return countNodes(t.root)
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.children {
		total += countNodes(c)
	}
	return total
}

// Depth returns the length of the tree's longest root-to-leaf path, in
// edges.
func (t *Tree) Depth() int {
	return depthOf(t.root)
}

func depthOf(n *Node) int {
	if len(n.children) == 0 {
		return 0
	}
	deepest := 0
	for _, c := range n.children {
		deepest = max2(deepest, depthOf(c))
	}
	return deepest + 1
}

var statsPrinter = message.NewPrinter(language.English)

// logStats reports iteration progress the way engine.Engine's debug
// logging does: thousands-separated counters via a message.Printer.
func logStats(logger func(a ...any), iteration, nodes int, tree *Tree) {
	logger(statsPrinter.Sprintf("iteration %d: %d nodes, tree size %d, depth %d",
		iteration, nodes, tree.Size(), tree.Depth()))
}
