// Package movegen produces pseudo-legal and legal moves for a position:
// per-piece move rules, castling preconditions, en-passant, and the
// legality filter that rejects moves leaving the mover's own king in
// check.
package movegen

import (
	"strings"

	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/square"
)

// List is a sequence of moves, with a debug-friendly String, grounded on
// original_source's Board::formatMoveList and the teacher's PVLine.String.
type List []board.Move

func (l List) String() string {
	parts := make([]string, len(l))
	for i, m := range l {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// LegalMoves returns every legal move for side to move in b: the
// pseudo-legal set with castling applied, filtered to exclude any move
// that would leave the mover's own king in check.
func LegalMoves(b *board.Board) List {
	pseudo := PseudoLegalMoves(b)
	legal := make(List, 0, len(pseudo))
	for _, m := range pseudo {
		clone := b.Clone()
		if err := clone.Apply(m); err != nil {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// PseudoLegalMoves returns every move consistent with piece movement rules
// and board occupancy, without checking whether the mover's king ends up
// in check.
func PseudoLegalMoves(b *board.Board) List {
	var moves List
	side := b.Turn()
	for file := int8(0); file < square.Dim; file++ {
		for rank := int8(0); rank < square.Dim; rank++ {
			sq := square.New(file, rank)
			p := b.PieceAt(sq)
			if p.IsEmpty() || p.Side() != side {
				continue
			}
			moves = append(moves, movesForPiece(b, sq, p)...)
		}
	}
	moves = append(moves, castlingMoves(b, side)...)
	return moves
}

func movesForPiece(b *board.Board, from square.Square, p board.Piece) List {
	switch p.Type() {
	case board.Pawn:
		return pawnMoves(b, from, p.Side())
	case board.Knight:
		return stepMoves(b, from, p, square.KnightDirections)
	case board.Bishop:
		return rayMoves(b, from, p, square.BishopDirections)
	case board.Rook:
		return rayMoves(b, from, p, square.RookDirections)
	case board.Queen:
		return rayMoves(b, from, p, square.QueenDirections)
	case board.King:
		return stepMoves(b, from, p, square.QueenDirections)
	default:
		return nil
	}
}

// stepMoves generates the single-step destinations of a non-sliding
// piece (knight or king) along dirs.
func stepMoves(b *board.Board, from square.Square, p board.Piece, dirs []square.Direction) List {
	var moves List
	for _, d := range dirs {
		to := from.Offset(d.DFile, d.DRank)
		if !to.Valid() {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.Side() == p.Side() {
			continue
		}
		moves = append(moves, board.Move{From: from, To: to, Piece: p, Captured: target})
	}
	return moves
}

func rayMoves(b *board.Board, from square.Square, p board.Piece, dirs []square.Direction) List {
	var moves List
	for _, d := range dirs {
		to := from.Offset(d.DFile, d.DRank)
		for to.Valid() {
			target := b.PieceAt(to)
			if target.IsEmpty() {
				moves = append(moves, board.Move{From: from, To: to, Piece: p})
				to = to.Offset(d.DFile, d.DRank)
				continue
			}
			if target.Side() != p.Side() {
				moves = append(moves, board.Move{From: from, To: to, Piece: p, Captured: target})
			}
			break
		}
	}
	return moves
}

func pawnMoves(b *board.Board, from square.Square, side board.Side) List {
	var moves List
	dir := int8(1)
	startRank := int8(1)
	promoteRank := int8(7)
	if side == board.Black {
		dir = -1
		startRank = 6
		promoteRank = 0
	}

	addWithPromotion := func(m board.Move) {
		if m.To.Rank == promoteRank {
			for _, promo := range board.PromotionCandidates {
				pm := m
				pm.Flag = board.FlagPromotion
				pm.Promotion = promo
				moves = append(moves, pm)
			}
			return
		}
		moves = append(moves, m)
	}

	one := from.Offset(0, dir)
	if one.Valid() && b.PieceAt(one).IsEmpty() {
		addWithPromotion(board.Move{From: from, To: one, Piece: board.NewPiece(board.Pawn, side)})
		if from.Rank == startRank {
			two := from.Offset(0, 2*dir)
			if two.Valid() && b.PieceAt(two).IsEmpty() {
				moves = append(moves, board.Move{From: from, To: two, Piece: board.NewPiece(board.Pawn, side), Flag: board.FlagDoublePawnPush})
			}
		}
	}

	for _, df := range []int8{-1, 1} {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.Side() != side {
			addWithPromotion(board.Move{From: from, To: to, Piece: board.NewPiece(board.Pawn, side), Captured: target})
			continue
		}
		if target.IsEmpty() {
			if epFile, ok := b.EnPassantTarget(); ok && epFile == to.File && from.Rank == enPassantCaptureRank(side) {
				captured := b.PieceAt(square.New(epFile, from.Rank))
				moves = append(moves, board.Move{
					From:     from,
					To:       to,
					Piece:    board.NewPiece(board.Pawn, side),
					Captured: captured,
					Flag:     board.FlagEnPassantCapture,
				})
			}
		}
	}

	return moves
}

// enPassantCaptureRank returns the rank a pawn of side must stand on to
// capture en-passant: the rank the just-double-pushed enemy pawn landed
// on. Matching only the target file, without also requiring the
// capturing pawn to be on this rank, would flag every empty square on
// the EP file as capturable by any pawn of that file, regardless of
// whether it is actually adjacent to the double-pushed pawn.
func enPassantCaptureRank(side board.Side) int8 {
	if side == board.White {
		return 4
	}
	return 3
}
