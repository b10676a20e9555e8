package mcts

import "golang.org/x/exp/constraints"

// max2 returns the larger of a and b, using the same generic-constraint
// helper pattern as the teacher's engine.go max/min/abs, reused here for
// tree-depth accumulation.
func max2[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
