package mcts

import (
	"fmt"
	"time"
)

// DefaultExploration is the UCT exploration constant c used when
// SearchConfig.Exploration is zero, matching the source's default
// exploration_constant.
const DefaultExploration = 1.41421356 // sqrt(2)

// DefaultLogger writes each call's arguments to stdout, matching the
// teacher's engine.DefaultLogger.
func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// SearchConfig configures one Search call: the wall-clock budget, the
// UCT exploration constant, debug logging, and RNG seeding. It replaces
// the source's global exploration_constant/do_debug/format_verbose
// mutables per the "global mutable state" redesign note.
type SearchConfig struct {
	// TimeBudget bounds how long Search may run; zero or negative means
	// unlimited (Search then relies on the caller's context for cancellation).
	TimeBudget time.Duration

	// Exploration is the UCT constant c. Zero selects DefaultExploration.
	Exploration float64

	// Debug enables statistics logging via Logger every 1000 iterations
	// and once more when the search ends.
	Debug bool

	// Logger receives debug output. Nil selects DefaultLogger.
	Logger func(a ...any)

	// Seed initializes the rollout move selector's RNG. Two Search calls
	// with the same Seed and the same starting position produce identical
	// rollouts, useful for tests; production callers should vary it.
	Seed int64
}

func (c SearchConfig) exploration() float64 {
	if c.Exploration == 0 {
		return DefaultExploration
	}
	return c.Exploration
}

func (c SearchConfig) logger() func(a ...any) {
	if c.Logger == nil {
		return DefaultLogger
	}
	return c.Logger
}
