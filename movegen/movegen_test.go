package movegen

import (
	"strings"
	"testing"

	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/square"
)

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	t.Parallel()
	b := board.New()
	moves := LegalMoves(b)
	if len(moves) != 20 {
		t.Fatalf("len(LegalMoves) = %d, want 20\nmoves: %s", len(moves), moves.String())
	}
}

func TestKnightMovesAfterE4E5(t *testing.T) {
	t.Parallel()
	b := board.New()
	applyBySquares(t, b, square.New(4, 1), square.New(4, 3)) // 1.e4
	applyBySquares(t, b, square.New(4, 6), square.New(4, 4)) // 1...e5
	applyBySquares(t, b, square.New(6, 0), square.New(5, 2)) // 2.Nf3
	// LegalMoves generates for the side to move; hand the move back to
	// White so the f3 knight's moves are the ones counted.
	b.SetTurn(board.White)

	knightMoves := 0
	from := square.New(5, 2)
	for _, m := range LegalMoves(b) {
		if m.From == from {
			knightMoves++
		}
	}
	if knightMoves != 5 {
		t.Errorf("knight on f3 has %d legal moves, want 5", knightMoves)
	}
}

func TestNoCastleThroughCheck(t *testing.T) {
	t.Parallel()
	// White king e1, rooks a1/h1, both castle rights held; a black rook on
	// f8 attacks f1 so kingside castling is blocked by an attacked transit
	// square, while queenside remains fully available.
	text := strings.Join([]string{
		". . . . k r . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"R . . . K . . R",
		"w KQ -",
	}, "\n") + "\n"
	b, err := board.LoadText(strings.NewReader(text))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}

	queenside := false
	for _, m := range castlingMoves(b, board.White) {
		if m.Flag == board.FlagCastleKingside {
			t.Errorf("kingside castle generated despite attacked transit square f1: %v", m)
		}
		if m.Flag == board.FlagCastleQueenside {
			queenside = true
		}
	}
	if !queenside {
		t.Errorf("queenside castle not generated although its squares are clear and unattacked")
	}
}

func TestNoCastleWhenKingInCheckBlocksBothSides(t *testing.T) {
	t.Parallel()
	// King e1, rooks a1/h1, black rook e8: the rook pins the king's own
	// square along the e-file, so the king is in check and neither castle
	// is available regardless of which transit squares would otherwise
	// be clear.
	text := strings.Join([]string{
		". . . . r . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"R . . . K . . R",
		"w KQ -",
	}, "\n") + "\n"
	b, err := board.LoadText(strings.NewReader(text))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if !b.InCheck(board.White) {
		t.Fatalf("white king should be in check from the rook on e8")
	}
	for _, m := range castlingMoves(b, board.White) {
		t.Errorf("castle generated while king is in check: %v", m)
	}
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	t.Parallel()
	// Black just double-pushed d7-d5; the white pawn on e5 stands on the
	// EP-adjacent rank and may capture onto d6.
	text := strings.Join([]string{
		"k . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . p P . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"K . . . . . . .",
		"w - d6",
	}, "\n") + "\n"
	b, err := board.LoadText(strings.NewReader(text))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}

	from := square.New(4, 4) // e5
	to := square.New(3, 5)   // d6
	var found *board.Move
	for _, m := range LegalMoves(b) {
		if m.From == from && m.To == to {
			found = &m
			break
		}
	}
	if found == nil {
		t.Fatalf("no legal en-passant capture e5xd6 found in %s", LegalMoves(b).String())
	}
	if found.Flag != board.FlagEnPassantCapture {
		t.Errorf("move e5-d6 has Flag %v, want FlagEnPassantCapture", found.Flag)
	}

	if err := b.Apply(*found); err != nil {
		t.Fatalf("Apply(%v): %v", *found, err)
	}
	if !b.PieceAt(square.New(3, 4)).IsEmpty() {
		t.Errorf("d5 still occupied after en-passant capture, want empty")
	}
	if b.PieceAt(to).Type() != board.Pawn || b.PieceAt(to).Side() != board.White {
		t.Errorf("d6 does not hold the capturing white pawn after en-passant capture")
	}
}

func TestPawnNotOnCaptureRankCannotPlayEnPassant(t *testing.T) {
	t.Parallel()
	// After 1.e4, White's pawn sits on e4 and the EP target file is e.
	// Black's still-unmoved pawns on d7 and f7 each have a diagonal move
	// whose destination file happens to equal the EP target file (e6),
	// but neither pawn is adjacent to the double-pushed pawn, so neither
	// may capture en passant.
	text := strings.Join([]string{
		"k . . . . . . .",
		". . . p . p . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . P . . .",
		". . . . . . . .",
		". . . . . . . .",
		"K . . . . . . .",
		"b - e3",
	}, "\n") + "\n"
	b, err := board.LoadText(strings.NewReader(text))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}

	for _, m := range LegalMoves(b) {
		if m.Flag == board.FlagEnPassantCapture {
			t.Errorf("pawn not adjacent to the double-pushed pawn generated an en-passant capture: %v", m)
		}
	}
}

func TestEnPassantTargetClearsAfterInterveningMove(t *testing.T) {
	t.Parallel()
	b := board.New()
	applyBySquares(t, b, square.New(4, 1), square.New(4, 3)) // 1.e4
	if _, ok := b.EnPassantTarget(); !ok {
		t.Fatalf("EnPassantTarget not set after double push")
	}

	applyBySquares(t, b, square.New(1, 7), square.New(2, 5)) // 1...Nc6, unrelated

	if _, ok := b.EnPassantTarget(); ok {
		t.Errorf("EnPassantTarget still set after an intervening non-capturing move")
	}
	for _, m := range LegalMoves(b) {
		if m.Flag == board.FlagEnPassantCapture {
			t.Errorf("en-passant capture still offered after the EP window closed: %v", m)
		}
	}
}

func applyBySquares(t *testing.T, b *board.Board, from, to square.Square) {
	t.Helper()
	for _, m := range LegalMoves(b) {
		if m.From == from && m.To == to {
			if err := b.Apply(m); err != nil {
				t.Fatalf("Apply(%v): %v", m, err)
			}
			return
		}
	}
	t.Fatalf("no legal move %s%s found", from, to)
}

func blankBoard(turn board.Side) *board.Board {
	text := strings.Repeat(". . . . . . . .\n", 8)
	if turn == board.White {
		text += "w - -\n"
	} else {
		text += "b - -\n"
	}
	b, err := board.LoadText(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return b
}
