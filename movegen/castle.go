package movegen

import (
	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/square"
)

// castlingMoves generates the castling moves available to side, checking
// all four preconditions per §4.C: the castle right is still held, the
// squares between king and rook are empty, the king is not currently in
// check, and none of the squares the king passes through or lands on are
// attacked.
//
// The source implementation checked black queenside castling against
// rank 0 (white's back rank) instead of rank 7; this generator uses the
// mover's own home rank consistently for both colors and both sides.
func castlingMoves(b *board.Board, side board.Side) List {
	var moves List
	rank := homeRankFor(side)
	kingFrom := square.New(4, rank)

	if b.PieceAt(kingFrom).Type() != board.King {
		return nil
	}
	if b.InCheck(side) {
		return nil
	}

	if b.CastleAllowed(side, true) {
		empty := []square.Square{square.New(5, rank), square.New(6, rank)}
		pass := []square.Square{square.New(4, rank), square.New(5, rank), square.New(6, rank)}
		if squaresEmpty(b, empty) && squaresSafe(b, side, pass) {
			moves = append(moves, board.Move{
				From:  kingFrom,
				To:    square.New(6, rank),
				Piece: board.NewPiece(board.King, side),
				Flag:  board.FlagCastleKingside,
			})
		}
	}

	if b.CastleAllowed(side, false) {
		empty := []square.Square{square.New(1, rank), square.New(2, rank), square.New(3, rank)}
		pass := []square.Square{square.New(4, rank), square.New(3, rank), square.New(2, rank)}
		if squaresEmpty(b, empty) && squaresSafe(b, side, pass) {
			moves = append(moves, board.Move{
				From:  kingFrom,
				To:    square.New(2, rank),
				Piece: board.NewPiece(board.King, side),
				Flag:  board.FlagCastleQueenside,
			})
		}
	}

	return moves
}

func homeRankFor(side board.Side) int8 {
	if side == board.White {
		return 0
	}
	return 7
}

func squaresEmpty(b *board.Board, squares []square.Square) bool {
	for _, sq := range squares {
		if !b.PieceAt(sq).IsEmpty() {
			return false
		}
	}
	return true
}

func squaresSafe(b *board.Board, side board.Side, squares []square.Square) bool {
	for _, sq := range squares {
		if len(b.AttackersOf(sq, side, board.EnemySource)) > 0 {
			return false
		}
	}
	return true
}
