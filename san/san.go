// Package san formats and parses Standard Algebraic Notation moves,
// per §4.B: Format renders a legal move with the correct disambiguator,
// capture marker, promotion suffix, and check/checkmate suffix; Parse
// peels a SAN string apart to find the one legal move it denotes.
package san

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/movegen"
	"github.com/uctchess/engine/square"
)

var (
	// ErrInvalidSAN is returned when a string is not well-formed SAN.
	ErrInvalidSAN = errors.New("san: invalid notation")
	// ErrNoMatchingMove is returned when a well-formed SAN string denotes
	// no legal move in the given position.
	ErrNoMatchingMove = errors.New("san: no matching legal move")
	// ErrAmbiguousMove is returned when a SAN string's disambiguator still
	// matches more than one legal move, which a well-formed SAN string
	// produced by Format never does.
	ErrAmbiguousMove = errors.New("san: ambiguous move")
)

// Format renders m, which must be legal in b, as SAN. The check and
// checkmate suffixes ("+", "#") and the promotion suffix ("=Q") are
// computed from the resulting position, fixing the source's omission of
// both.
func Format(b *board.Board, m board.Move) (string, error) {
	var sb strings.Builder

	switch m.Flag {
	case board.FlagCastleKingside:
		sb.WriteString("O-O")
	case board.FlagCastleQueenside:
		sb.WriteString("O-O-O")
	default:
		writeBody(&sb, b, m)
	}

	if m.Flag == board.FlagPromotion {
		sb.WriteString("=")
		sb.WriteString(m.Promotion.SymbolAlgebra())
	}

	suffix, err := checkSuffix(b, m)
	if err != nil {
		return "", err
	}
	sb.WriteString(suffix)

	return sb.String(), nil
}

func writeBody(sb *strings.Builder, b *board.Board, m board.Move) {
	if m.Piece.Type() == board.Pawn {
		if m.IsCapture() {
			sb.WriteString(fileLetter(m.From.File))
			sb.WriteString("x")
		}
		sb.WriteString(m.To.Notation())
		return
	}

	sb.WriteString(m.Piece.Type().SymbolAlgebra())
	sb.WriteString(disambiguator(b, m))
	if m.IsCapture() {
		sb.WriteString("x")
	}
	sb.WriteString(m.To.Notation())
}

// disambiguator returns the minimal file/rank/square prefix needed to
// distinguish m from any other piece of the same type geometrically
// attacking the same destination, per §4.B: the candidate set is drawn
// from AttackersOf's friendly-source query, not the legal move list, so
// a same-type piece pinned against its own king still forces a
// disambiguator even though it has no legal move to m.To.
func disambiguator(b *board.Board, m board.Move) string {
	var others, sameFile, sameRank bool
	for _, sq := range b.AttackersOf(m.To, m.Piece.Side(), board.FriendlySource) {
		if sq == m.From || b.PieceAt(sq).Type() != m.Piece.Type() {
			continue
		}
		others = true
		if sq.File == m.From.File {
			sameFile = true
		}
		if sq.Rank == m.From.Rank {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return fileLetter(m.From.File)
	case !sameRank:
		return rankDigit(m.From.Rank)
	default:
		return m.From.Notation()
	}
}

func checkSuffix(b *board.Board, m board.Move) (string, error) {
	clone := b.Clone()
	mover := m.Piece.Side()
	if err := clone.Apply(m); err != nil {
		return "", fmt.Errorf("san: move is illegal: %w", err)
	}
	opponent := mover.Opposite()
	if !clone.InCheck(opponent) {
		return "", nil
	}
	if len(movegen.LegalMoves(clone)) == 0 {
		return "#", nil
	}
	return "+", nil
}

func fileLetter(file int8) string {
	return string(rune('a' + file))
}

func rankDigit(rank int8) string {
	return string(rune('1' + rank))
}

// Parse finds the single legal move in b denoted by s. It peels the
// string from the right: trailing check/mate markers, the destination
// square, then capture marker and disambiguator, then the leading piece
// letter. Ambiguity is resolved by filtering the legal move list down to
// exactly those candidates matching every parsed constraint, correctly
// discarding non-matches rather than leaving them in, per §9.
func Parse(b *board.Board, s string) (board.Move, error) {
	s = strings.TrimRight(s, "+#")
	if s == "" {
		return board.Move{}, fmt.Errorf("%w: empty move", ErrInvalidSAN)
	}

	legal := movegen.LegalMoves(b)

	if s == "O-O" || s == "O-O-O" {
		flag := board.FlagCastleKingside
		if s == "O-O-O" {
			flag = board.FlagCastleQueenside
		}
		return matchOne(legal, func(m board.Move) bool { return m.Flag == flag })
	}

	var promotion board.PieceType = board.None
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+2 > len(s) {
			return board.Move{}, fmt.Errorf("%w: dangling promotion marker in %q", ErrInvalidSAN, s)
		}
		var err error
		promotion, err = pieceTypeFromLetter(s[idx+1 : idx+2])
		if err != nil {
			return board.Move{}, err
		}
		s = s[:idx]
	}

	if len(s) < 2 {
		return board.Move{}, fmt.Errorf("%w: %q too short", ErrInvalidSAN, s)
	}
	destStr := s[len(s)-2:]
	dest, err := square.FromNotation(destStr)
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: bad destination %q", ErrInvalidSAN, destStr)
	}
	rest := s[:len(s)-2]

	capture := false
	if strings.HasSuffix(rest, "x") {
		capture = true
		rest = rest[:len(rest)-1]
	}

	pieceType := board.Pawn
	if len(rest) > 0 && isPieceLetter(rest[0]) {
		pieceType, err = pieceTypeFromLetter(rest[:1])
		if err != nil {
			return board.Move{}, err
		}
		rest = rest[1:]
	}

	var fileHint, rankHint = int8(-1), int8(-1)
	for _, c := range rest {
		switch {
		case c >= 'a' && c <= 'h':
			fileHint = int8(c - 'a')
		case c >= '1' && c <= '8':
			rankHint = int8(c - '1')
		default:
			return board.Move{}, fmt.Errorf("%w: unexpected disambiguator %q in %q", ErrInvalidSAN, string(c), s)
		}
	}

	// For non-pawn pieces, the disambiguator in s was chosen by Format
	// against the friendly-source attacker set (see disambiguator above),
	// so resolving it here against that same geometric set, rather than
	// against the legal move list, is what lets a pinned same-type piece
	// correctly absorb an ambiguity that a plain legal-move filter would
	// never have required in the first place.
	var origins []square.Square
	if pieceType != board.Pawn {
		for _, sq := range b.AttackersOf(dest, b.Turn(), board.FriendlySource) {
			if b.PieceAt(sq).Type() != pieceType {
				continue
			}
			if fileHint >= 0 && sq.File != fileHint {
				continue
			}
			if rankHint >= 0 && sq.Rank != rankHint {
				continue
			}
			origins = append(origins, sq)
		}
		if len(origins) == 0 {
			return board.Move{}, fmt.Errorf("%w: %q", ErrNoMatchingMove, s)
		}
	}

	return matchOne(legal, func(m board.Move) bool {
		if m.Piece.Type() != pieceType || m.To != dest {
			return false
		}
		if capture != m.IsCapture() {
			return false
		}
		if promotion != board.None && m.Promotion != promotion {
			return false
		}
		if pieceType == board.Pawn {
			if fileHint >= 0 && m.From.File != fileHint {
				return false
			}
			if rankHint >= 0 && m.From.Rank != rankHint {
				return false
			}
			return true
		}
		return containsSquare(origins, m.From)
	})
}

func containsSquare(squares []square.Square, target square.Square) bool {
	for _, sq := range squares {
		if sq == target {
			return true
		}
	}
	return false
}

func matchOne(moves movegen.List, pred func(board.Move) bool) (board.Move, error) {
	var matches movegen.List
	for _, m := range moves {
		if pred(m) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return board.Move{}, fmt.Errorf("%w", ErrNoMatchingMove)
	case 1:
		return matches[0], nil
	default:
		return board.Move{}, fmt.Errorf("%w: %s", ErrAmbiguousMove, matches.String())
	}
}

func isPieceLetter(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K':
		return true
	default:
		return false
	}
}

func pieceTypeFromLetter(s string) (board.PieceType, error) {
	switch s {
	case "N":
		return board.Knight, nil
	case "B":
		return board.Bishop, nil
	case "R":
		return board.Rook, nil
	case "Q":
		return board.Queen, nil
	case "K":
		return board.King, nil
	default:
		return board.None, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidSAN, s)
	}
}
