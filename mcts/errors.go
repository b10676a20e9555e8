package mcts

import "errors"

// ErrNoLegalMoves is returned when Search is asked to search a position
// with no legal moves for the side to move. Search also returns it when
// the budget or context ends before any child of the root was expanded.
var ErrNoLegalMoves = errors.New("mcts: no legal moves in starting position")
