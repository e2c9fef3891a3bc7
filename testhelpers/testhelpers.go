// Package testhelpers has small builders and oracles shared by tests.
package testhelpers

import (
	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/move"
)

// MustBoard parses board notation and panics on error.
func MustBoard(s string) *board.Board {
	b, err := board.FromNotation(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MustHand parses a hand and panics on error.
func MustHand(s string) card.Hand {
	h, err := card.HandFromString(s)
	if err != nil {
		panic(err)
	}
	return h
}

// MustMoveSet parses a move-set owned by owner and panics on error.
func MustMoveSet(s, owner string) move.MoveSet {
	ms, err := move.FromString(s, owner)
	if err != nil {
		panic(err)
	}
	return ms
}

// placementsOK checks the structural part every test oracle shares: no
// placement on an occupied square and no square used twice.
func placementsOK(ms move.MoveSet, b *board.Board) bool {
	if ms.IsEmpty() {
		return false
	}
	seen := map[board.Position]bool{}
	for _, p := range ms.Positions() {
		if b.Occupied(p) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// AscendingChain is a legality oracle that accepts a move-set when each
// placement has the colour of, and a value one higher than, an adjacent
// predecessor: the first placement's predecessor is any board card, and
// every later placement's predecessor is the placement just before it.
func AscendingChain(ms move.MoveSet, b *board.Board) bool {
	if !placementsOK(ms, b) {
		return false
	}
	first := ms.At(0)
	ok := false
	for _, pc := range b.Cards() {
		if follows(pc, first) {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	for i := 1; i < ms.Len(); i++ {
		if !follows(ms.At(i-1), ms.At(i)) {
			return false
		}
	}
	return true
}

func follows(prev, next board.PlacedCard) bool {
	return prev.Pos.Adjacent(next.Pos) &&
		prev.Card.Colour == next.Card.Colour &&
		next.Card.Value == prev.Card.Value+1
}

// Anything accepts every structurally sound move-set.
func Anything(ms move.MoveSet, b *board.Board) bool {
	return placementsOK(ms, b)
}
