package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/uctchess/engine/square"
)

// LoadText parses this package's board-text format: eight rank lines
// from rank 8 down to rank 1, each with eight space-separated square
// symbols ('.' for empty, uppercase for white, lowercase for black),
// followed by a ninth line "turn castle ep" (turn is "w" or "b", castle
// is a KQkq-style string or "-", ep is a square notation or "-").
// Reading the source itself (files, stdin) is the CLI collaborator's job;
// LoadText only parses an already-obtained io.Reader.
func LoadText(r io.Reader) (*Board, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if len(lines) != 9 {
		return nil, fmt.Errorf("%w: expected 9 non-blank lines, got %d", ErrInvalidText, len(lines))
	}

	b := &Board{}
	for i := 0; i < square.Dim; i++ {
		rank := int8(square.Dim - 1 - i)
		symbols := strings.Fields(lines[i])
		if len(symbols) != square.Dim {
			return nil, fmt.Errorf("%w: rank line %d has %d squares, want %d", ErrInvalidText, i+1, len(symbols), square.Dim)
		}
		for file, sym := range symbols {
			p, err := pieceFromSymbol(sym)
			if err != nil {
				return nil, err
			}
			b.SetPieceAt(square.New(int8(file), rank), p)
		}
	}

	fields := strings.Fields(lines[8])
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: status line must have 3 fields, got %d", ErrInvalidText, len(fields))
	}
	switch fields[0] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("%w: unknown turn %q", ErrInvalidText, fields[0])
	}
	if fields[1] != "-" {
		for _, c := range fields[1] {
			switch c {
			case 'K':
				b.flags |= flagWhiteKingside
			case 'Q':
				b.flags |= flagWhiteQueenside
			case 'k':
				b.flags |= flagBlackKingside
			case 'q':
				b.flags |= flagBlackQueenside
			default:
				return nil, fmt.Errorf("%w: unknown castle letter %q", ErrInvalidText, c)
			}
		}
	}
	if fields[2] != "-" {
		sq, err := square.FromNotation(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en-passant square: %v", ErrInvalidText, err)
		}
		b.setEnPassant(sq.File)
	}

	return b, nil
}

func pieceFromSymbol(sym string) (Piece, error) {
	if len(sym) != 1 {
		return Empty, fmt.Errorf("%w: bad square symbol %q", ErrInvalidText, sym)
	}
	c := sym[0]
	if c == '.' {
		return Empty, nil
	}
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 0x20
	}
	var t PieceType
	switch c {
	case 'P':
		t = Pawn
	case 'N':
		t = Knight
	case 'B':
		t = Bishop
	case 'R':
		t = Rook
	case 'Q':
		t = Queen
	case 'K':
		t = King
	default:
		return Empty, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidText, sym)
	}
	return NewPiece(t, side), nil
}

// WriteText renders b in the board-text format read by LoadText.
func WriteText(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for rank := int8(square.Dim - 1); rank >= 0; rank-- {
		for file := int8(0); file < square.Dim; file++ {
			if file > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(b.PieceAt(square.New(file, rank)).SymbolFEN())
		}
		bw.WriteByte('\n')
	}
	turn := "w"
	if b.turn == Black {
		turn = "b"
	}
	castle := flagLetter(b.flags&flagWhiteKingside != 0, "K") +
		flagLetter(b.flags&flagWhiteQueenside != 0, "Q") +
		flagLetter(b.flags&flagBlackKingside != 0, "k") +
		flagLetter(b.flags&flagBlackQueenside != 0, "q")
	if castle == "----" {
		castle = "-"
	} else {
		castle = strings.ReplaceAll(castle, "-", "")
	}
	ep := "-"
	if file, ok := b.EnPassantTarget(); ok {
		rank := int8(2)
		if b.turn == White {
			rank = 5
		}
		ep = square.New(file, rank).Notation()
	}
	fmt.Fprintf(bw, "%s %s %s\n", turn, castle, ep)
	return bw.Flush()
}
