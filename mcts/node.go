package mcts

import (
	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/cache"
	"github.com/uctchess/engine/movegen"
)

// Node is one position in the search tree. Children are owned by their
// parent's slice; a Node never holds a raw pointer into another Node's
// storage beyond the parent back-reference, so the tree can be discarded
// wholesale by dropping the root without per-node cleanup, per §9's
// "arena, not raw pointers" design note.
type Node struct {
	position *board.Board
	side     board.Side // side to move at this position
	move     board.Move // the move that produced this node from its parent; zero at the root
	parent   *Node
	children []*Node

	unexplored  movegen.List
	expandCount int
	totalValue  float64
}

// newNode creates a node for position, pre-populating its unexplored
// child moves the way the source's expand() lazily discovers them on
// first visit. c memoizes the (position, side) -> legal-move lookup
// across the whole search, per §4.E, so a transposition reached by two
// different move orders only runs movegen once.
func newNode(parent *Node, position *board.Board, move board.Move, c *cache.Cache) *Node {
	side := position.Turn()
	return &Node{
		position:   position,
		side:       side,
		move:       move,
		parent:     parent,
		unexplored: cloneMoves(c.GetOrCompute(position, side).LegalMoves),
	}
}

// cloneMoves returns a copy of moves so a node's unexplored list can be
// drained by expand without mutating the cache entry shared by every
// other node that transposes into the same (position, side) key.
func cloneMoves(moves movegen.List) movegen.List {
	out := make(movegen.List, len(moves))
	copy(out, moves)
	return out
}

// fullyExpanded reports whether every legal move from n already has a
// child.
func (n *Node) fullyExpanded() bool {
	return len(n.unexplored) == 0
}

// isTerminal reports whether n's position has no legal moves at all.
func (n *Node) isTerminal() bool {
	return len(n.unexplored) == 0 && len(n.children) == 0
}

// meanValue is Q(k)/N(k), the average backpropagated value at n.
func (n *Node) meanValue() float64 {
	if n.expandCount == 0 {
		return 0
	}
	return n.totalValue / float64(n.expandCount)
}
