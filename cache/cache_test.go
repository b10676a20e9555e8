package cache

import (
	"testing"

	"github.com/uctchess/engine/board"
)

func TestGetOrComputeMemoizes(t *testing.T) {
	t.Parallel()
	c := New()
	b := board.New()

	first := c.GetOrCompute(b, board.White)
	if !first.HasMoves || len(first.LegalMoves) != 20 {
		t.Fatalf("first GetOrCompute: HasMoves=%v len(LegalMoves)=%d, want true/20", first.HasMoves, len(first.LegalMoves))
	}
	if c.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", c.Size())
	}

	second := c.GetOrCompute(b, board.White)
	if len(second.LegalMoves) != len(first.LegalMoves) {
		t.Fatalf("second GetOrCompute returned a different move count: %d vs %d", len(second.LegalMoves), len(first.LegalMoves))
	}
	if c.Size() != 1 {
		t.Fatalf("Size() after repeat lookup = %d, want 1 (no duplicate insert)", c.Size())
	}
}

func TestKeyDiffersByColor(t *testing.T) {
	t.Parallel()
	c := New()
	b := board.New()

	c.GetOrCompute(b, board.White)
	c.GetOrCompute(b, board.Black)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2 (white and black keys must differ for an identical board)", c.Size())
	}
}
