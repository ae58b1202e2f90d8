// Package gobantest provides helper functions to create tests using goban boards.
package gobantest

import (
	. "github.com/janpfeifer/goban/internal/goban"
)

// StoneOnBoard represents a stone on the given row and column (both starting at 1).
type StoneOnBoard struct {
	Row, Col int
	Player   Player
}

// BuildBoard creates a board of the given size with the stones placed. No rules are applied:
// stones are simply moved from Empty to the player's Occupied set.
func BuildBoard(size int, stones []StoneOnBoard) (b *Board) {
	b = MustNew(size)
	for _, s := range stones {
		x := int(b.At(s.Row, s.Col))
		b.Empty.Unset(x)
		b.Occupied[s.Player].Set(x)
	}
	return
}
