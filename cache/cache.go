// Package cache memoizes per-position move-generation and check results
// for the lifetime of a single search, keyed by (board, side to move),
// per §4.E.
package cache

import (
	"github.com/uctchess/engine/board"
	"github.com/uctchess/engine/movegen"
)

// Entry holds everything worth memoizing about one (board, side) key:
// whether legal moves exist, the move list itself, and whether that side
// is in check.
type Entry struct {
	HasMoves   bool
	LegalMoves movegen.List
	InCheck    bool
}

// Cache is a monotonic, insert-only memo table: entries are never
// evicted or overwritten within a search, matching §4.E's single-search
// lifetime.
type Cache struct {
	entries map[uint64]Entry
}

// New returns an empty cache, sized for a typical search's working set.
func New() *Cache {
	return &Cache{entries: make(map[uint64]Entry, 4096)}
}

// key combines the board's DJB2 hash with the side to move, following
// the source's XOR-with-color-bit convention so White and Black
// evaluations of an otherwise identical 33-byte state never collide.
func key(b *board.Board, side board.Side) uint64 {
	h := b.Hash()
	if side == board.Black {
		h ^= 1
	}
	return h
}

// Get returns the memoized entry for (b, side), if present.
func (c *Cache) Get(b *board.Board, side board.Side) (Entry, bool) {
	e, ok := c.entries[key(b, side)]
	return e, ok
}

// GetOrCompute returns the memoized entry for (b, side), computing and
// inserting it via movegen and board.InCheck on a miss.
func (c *Cache) GetOrCompute(b *board.Board, side board.Side) Entry {
	k := key(b, side)
	if e, ok := c.entries[k]; ok {
		return e
	}
	moves := movegen.LegalMoves(b)
	e := Entry{
		HasMoves:   len(moves) > 0,
		LegalMoves: moves,
		InCheck:    b.InCheck(side),
	}
	c.entries[k] = e
	return e
}

// Size reports how many positions are currently memoized.
func (c *Cache) Size() int {
	return len(c.entries)
}
