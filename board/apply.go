package board

import (
	"errors"
	"fmt"

	"github.com/uctchess/engine/square"
)

// ErrIllegalMoveApplied reports that a move leaving its own side's king in
// check reached Apply. movegen's legality filter relies on it to drop
// pseudo-legal moves; every other caller in this repo applies moves taken
// from that filtered list, so for them it indicates an invariant
// violation rather than routine rejection.
var ErrIllegalMoveApplied = errors.New("illegal move applied")

// Apply mutates b to reflect m: relocating the piece, handling captures
// (including en-passant), castling rook movement, promotion, castle-rights
// transitions, the en-passant target flag, and the side to move. It
// returns ErrIllegalMoveApplied if the resulting position leaves the
// moving side's own king in check.
func (b *Board) Apply(m Move) error {
	mover := m.Piece.Side()

	b.SetPieceAt(m.From, Empty)

	switch m.Flag {
	case FlagEnPassantCapture:
		capturedRank := m.From.Rank
		b.SetPieceAt(square.New(m.To.File, capturedRank), Empty)
		b.SetPieceAt(m.To, m.Piece)
	case FlagCastleKingside, FlagCastleQueenside:
		b.SetPieceAt(m.To, m.Piece)
		rank := homeRank(mover)
		var rookFrom, rookTo square.Square
		if m.Flag == FlagCastleKingside {
			rookFrom = square.New(7, rank)
			rookTo = square.New(5, rank)
		} else {
			rookFrom = square.New(0, rank)
			rookTo = square.New(3, rank)
		}
		rook := b.PieceAt(rookFrom)
		b.SetPieceAt(rookFrom, Empty)
		b.SetPieceAt(rookTo, rook)
	case FlagPromotion:
		b.SetPieceAt(m.To, NewPiece(m.Promotion, mover))
	default:
		b.SetPieceAt(m.To, m.Piece)
	}

	b.updateCastleRights(m, mover)

	if m.Flag == FlagDoublePawnPush {
		b.setEnPassant(m.From.File)
	} else {
		b.clearEnPassant()
	}

	b.turn = mover.Opposite()

	if b.InCheck(mover) {
		return fmt.Errorf("%w: %s leaves %s king in check", ErrIllegalMoveApplied, m, mover)
	}
	return nil
}

// updateCastleRights clears rights whenever a king or an original rook
// square is vacated or captured into, matching §4.A's castle-rights
// transition rule.
func (b *Board) updateCastleRights(m Move, mover Side) {
	if m.Piece.Type() == King {
		b.clearCastleRight(mover, true)
		b.clearCastleRight(mover, false)
	}
	clearIfRookSquare := func(sq square.Square) {
		switch {
		case sq == square.New(7, 0):
			b.clearCastleRight(White, true)
		case sq == square.New(0, 0):
			b.clearCastleRight(White, false)
		case sq == square.New(7, 7):
			b.clearCastleRight(Black, true)
		case sq == square.New(0, 7):
			b.clearCastleRight(Black, false)
		}
	}
	clearIfRookSquare(m.From)
	clearIfRookSquare(m.To)
}
