package board

import "github.com/uctchess/engine/square"

// MoveFlag marks special-move handling that Apply must perform beyond a
// plain piece relocation.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagDoublePawnPush
	FlagEnPassantCapture
	FlagCastleKingside
	FlagCastleQueenside
	FlagPromotion
)

// Move is an immutable description of a single ply, produced by movegen and
// consumed by Board.Apply, san.Format, and mcts.Node.
type Move struct {
	From, To  square.Square
	Piece     Piece // the moving piece, before the move
	Captured  Piece // Empty if none
	Promotion PieceType // None unless Flag == FlagPromotion
	Flag      MoveFlag
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty() || m.Flag == FlagEnPassantCapture
}

// IsCastle reports whether the move is a king castling move.
func (m Move) IsCastle() bool {
	return m.Flag == FlagCastleKingside || m.Flag == FlagCastleQueenside
}

func (m Move) String() string {
	return m.From.Notation() + m.To.Notation()
}
