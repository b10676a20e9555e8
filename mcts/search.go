// Package mcts implements Monte Carlo Tree Search over the board package's
// position representation: UCT-guided selection, expansion, uniform
// random rollout, and backpropagation, per §4.G. The search runs
// synchronously on a single goroutine, checking a wall-clock budget
// between iterations, per §5.
package mcts

import (
	"context"

	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/cache"
	"github.com/uctchess/engine/evaluator"
	"github.com/uctchess/engine/moveselect"
)

// searcher holds the per-call state a Search invocation threads through
// its tree/default/backprop policies.
type searcher struct {
	cfg      SearchConfig
	selector *moveselect.Selector
	cache    *cache.Cache
}

// Search runs MCTS from position until cfg.TimeBudget elapses or ctx is
// canceled, then returns the move whose child was visited most often, the
// standard robust-child selection once the iteration budget runs out.
func Search(ctx context.Context, position *board.Board, cfg SearchConfig) (board.Move, *Tree, error) {
	s := &searcher{
		cfg:      cfg,
		selector: moveselect.New(cfg.Seed),
		cache:    cache.New(),
	}

	root := newNode(nil, position.Clone(), board.Move{}, s.cache)
	if len(root.unexplored) == 0 {
		return board.Move{}, nil, ErrNoLegalMoves
	}

	tree := &Tree{root: root}

	clk := newClock(ctx, cfg.TimeBudget)
	defer clk.Stop()

	logger := cfg.logger()
	iteration := 0
	for !clk.Done() {
		leaf := s.treePolicy(root)
		value := s.defaultPolicy(leaf)
		backPropagate(leaf, value)

		iteration++
		if cfg.Debug && iteration%1000 == 0 {
			logStats(logger, iteration, iteration, tree)
		}
	}

	best := mostVisitedChild(root)
	if best == nil {
		return board.Move{}, tree, ErrNoLegalMoves
	}
	if cfg.Debug {
		logStats(logger, iteration, iteration, tree)
	}
	return best.move, tree, nil
}

// treePolicy descends from n via UCT selection while nodes are fully
// expanded, and expands the first not-fully-expanded node it reaches, per
// §4.G's tree_policy.
func (s *searcher) treePolicy(n *Node) *Node {
	for !n.isTerminal() {
		if !n.fullyExpanded() {
			return s.expand(n)
		}
		n = bestChild(n, s.cfg.exploration())
	}
	return n
}

// expand pops one move from n's unexplored set, applies it to a clone of
// n's position, and appends the resulting child, per §4.G's expand.
func (s *searcher) expand(n *Node) *Node {
	m, err := s.selector.SelectUniform(n.unexplored)
	if err != nil {
		panic(err) // unreachable: treePolicy only calls expand when unexplored is non-empty
	}
	for i, cand := range n.unexplored {
		if cand == m {
			n.unexplored = append(n.unexplored[:i], n.unexplored[i+1:]...)
			break
		}
	}

	child := n.position.Clone()
	if err := child.Apply(m); err != nil {
		panic(err) // unreachable: m came from movegen's legal move list
	}

	node := newNode(n, child, m, s.cache)
	n.children = append(n.children, node)
	return node
}

// defaultPolicy plays uniform-random legal moves from n's position until
// the game reaches a terminal state, then returns the evaluator's value
// from n's own side-to-move perspective. Per §9's explicit design
// decision, this raw value is not renegotiated per ply during rollout,
// and backPropagate below adds it unchanged up every ancestor without
// flipping its sign at alternating plies.
func (s *searcher) defaultPolicy(n *Node) float64 {
	position := n.position.Clone()
	for {
		eval := evaluator.Evaluate(position, n.side)
		if eval.State != evaluator.Normal {
			return float64(eval.Value)
		}
		moves := s.cache.GetOrCompute(position, position.Turn()).LegalMoves
		m, err := s.selector.SelectUniform(moves)
		if err != nil {
			return float64(eval.Value)
		}
		if err := position.Apply(m); err != nil {
			panic(err) // unreachable: m came from movegen's legal move list
		}
	}
}

// backPropagate walks the parent chain from n to the root, incrementing
// each ancestor's visit count and adding value unchanged, per §4.G and
// §9's no-per-ply-negation design note.
func backPropagate(n *Node, value float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.expandCount++
		cur.totalValue += value
	}
}
