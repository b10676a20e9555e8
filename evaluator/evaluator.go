// Package evaluator computes material score and terminal game state for a
// position, per §4.D: a single-scan material count from a side's
// perspective and terminal classification (checkmate, stalemate, or
// insufficient material) applied in a fixed precedence order.
package evaluator

import (
	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/movegen"
	"github.com/uctchess/engine/square"
)

// State is the terminal classification of a position.
type State uint8

const (
	Normal State = iota
	Stalemate
	WhiteWins
	BlackWins
)

func (s State) String() string {
	switch s {
	case Stalemate:
		return "stalemate"
	case WhiteWins:
		return "white_wins"
	case BlackWins:
		return "black_wins"
	default:
		return "normal"
	}
}

// Evaluation is the result of evaluating a position from one side's
// perspective: State classifies the position, Value is the signed
// material score (positive favors the side the Evaluate call was made
// for).
type Evaluation struct {
	State State
	Value int
}

// Evaluate scores b from the perspective of side: material count signed
// so a positive value favors side, plus terminal classification following
// the precedence: checkmate first, then stalemate (no legal moves without
// check), then insufficient material, else Normal.
func Evaluate(b *board.Board, side board.Side) Evaluation {
	value := materialValue(b, side)

	if isCheckmate(b, board.White) {
		return Evaluation{State: BlackWins, Value: value}
	}
	if isCheckmate(b, board.Black) {
		return Evaluation{State: WhiteWins, Value: value}
	}
	if !hasLegalMoves(b, b.Turn()) {
		return Evaluation{State: Stalemate, Value: value}
	}
	if state := insufficientMaterialState(b); state != Normal {
		return Evaluation{State: state, Value: value}
	}

	return Evaluation{State: Normal, Value: value}
}

func materialValue(b *board.Board, side board.Side) int {
	value := 0
	for file := int8(0); file < square.Dim; file++ {
		for rank := int8(0); rank < square.Dim; rank++ {
			p := b.PieceAt(square.New(file, rank))
			if p.IsEmpty() {
				continue
			}
			v := p.Type().MaterialValue()
			if p.Side() == side {
				value += v
			} else {
				value -= v
			}
		}
	}
	return value
}

func isCheckmate(b *board.Board, side board.Side) bool {
	if b.Turn() != side {
		return false
	}
	return b.InCheck(side) && !hasLegalMoves(b, side)
}

// hasLegalMoves reports whether side, which must be the side to move in
// b, has at least one legal move.
func hasLegalMoves(b *board.Board, side board.Side) bool {
	return len(movegen.LegalMoves(b)) > 0
}

// insufficientMaterialState detects king-only and king-plus-minor draws.
// Two minor pieces of opposite bishop color (or a bishop and a knight) on
// the lone non-king side are treated as sufficient to force checkmate and
// so are not classified as a draw here.
func insufficientMaterialState(b *board.Board) State {
	var white, black material
	for file := int8(0); file < square.Dim; file++ {
		for rank := int8(0); rank < square.Dim; rank++ {
			p := b.PieceAt(square.New(file, rank))
			if p.IsEmpty() || p.Type() == board.King {
				continue
			}
			m := &white
			if p.Side() == board.Black {
				m = &black
			}
			switch p.Type() {
			case board.Pawn:
				m.pawns++
			case board.Knight:
				m.knights++
			case board.Bishop:
				if (file+rank)%2 == 0 {
					m.darkBishops++
				} else {
					m.lightBishops++
				}
			case board.Rook:
				m.rooks++
			case board.Queen:
				m.queens++
			}
		}
	}

	if white.empty() && black.empty() {
		return Stalemate
	}
	if white.empty() && !black.canForceMate() {
		return Stalemate
	}
	if black.empty() && !white.canForceMate() {
		return Stalemate
	}
	return Normal
}

type material struct {
	pawns, knights, rooks, queens int
	lightBishops, darkBishops     int
}

func (m material) empty() bool {
	return m.pawns == 0 && m.knights == 0 && m.rooks == 0 && m.queens == 0 &&
		m.lightBishops == 0 && m.darkBishops == 0
}

// canForceMate reports whether this lone side (beyond its king) carries
// enough material to force checkmate: any pawn, rook, or queen; a
// bishop pair with one bishop on each square color; or a bishop plus a
// knight.
func (m material) canForceMate() bool {
	if m.pawns > 0 || m.rooks > 0 || m.queens > 0 {
		return true
	}
	if m.lightBishops > 0 && m.darkBishops > 0 {
		return true
	}
	if (m.lightBishops+m.darkBishops) > 0 && m.knights > 0 {
		return true
	}
	return false
}
