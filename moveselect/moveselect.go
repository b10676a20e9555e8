// Package moveselect picks one move from a candidate list by weighted
// random sampling. It owns its random source so callers (the MCTS default
// policy, primarily) get reproducible behavior for a given seed. Every
// Selector is seeded from the seed its caller passes; the package never
// draws OS entropy itself.
package moveselect

import (
	"errors"
	"math/rand"

	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/movegen"
)

// ErrNoMoves is returned when Select is called with an empty candidate
// list.
var ErrNoMoves = errors.New("moveselect: no candidate moves")

// Selector draws one move at a time from a weighted distribution over a
// candidate list, using its own private *rand.Rand.
type Selector struct {
	rng *rand.Rand
}

// New returns a Selector seeded from the given seed. A zero seed is a
// valid, reproducible seed; callers wanting OS randomness should seed
// from crypto/rand or time themselves and pass the result in.
func New(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Select draws one move from moves with the given weights, which need
// not already sum to 1: they are normalized internally. len(weights) must
// equal len(moves).
func (s *Selector) Select(moves movegen.List, weights []float64) (board.Move, error) {
	if len(moves) == 0 {
		return board.Move{}, ErrNoMoves
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return moves[s.rng.Intn(len(moves))], nil
	}

	draw := s.rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if draw <= cumulative {
			return moves[i], nil
		}
	}
	return moves[len(moves)-1], nil
}

// SelectUniform draws one move from moves with equal weight, the mode
// used by the MCTS rollout policy.
func (s *Selector) SelectUniform(moves movegen.List) (board.Move, error) {
	if len(moves) == 0 {
		return board.Move{}, ErrNoMoves
	}
	return moves[s.rng.Intn(len(moves))], nil
}
