package rules

import (
	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/move"
)

const (
	// MaxLineLength is the longest run of cards allowed in a row or column.
	// A run of exactly this length is a "lot".
	MaxLineLength = 4
	// FullHandBonusCards is how many cards a single turn must place to earn
	// the full-hand doubling.
	FullHandBonusCards = 4
)

// Standard is the normal rule set.
//
// A move-set is legal when its placements sit on distinct empty squares in
// a single row or column, the span they cover has no gaps (board cards may
// fill them), at least one of them touches a card already on the board,
// and every line through a placement has at most four cards, no repeats,
// and for colour, shape and value either all alike or all different.
//
// Each line of two or more cards through a placement scores the sum of its
// values. Each lot completed doubles the turn's score, and placing four
// cards doubles it once more.
type Standard struct{}

func (Standard) IsLegal(ms move.MoveSet, b *board.Board) bool {
	_, ok := evaluate(ms, b)
	return ok
}

func (Standard) Score(ms move.MoveSet, b *board.Board) int {
	s, ok := evaluate(ms, b)
	if !ok {
		return IllegalScore
	}
	return s
}

func evaluate(ms move.MoveSet, b *board.Board) (int, bool) {
	n := ms.Len()
	if n == 0 || n > MaxLineLength {
		return 0, false
	}
	placed := make(map[board.Position]card.Card, n)
	for i := 0; i < n; i++ {
		pc := ms.At(i)
		if !pc.Card.Valid() || b.Occupied(pc.Pos) {
			return 0, false
		}
		if _, dup := placed[pc.Pos]; dup {
			return 0, false
		}
		placed[pc.Pos] = pc.Card
	}
	at := func(p board.Position) (card.Card, bool) {
		if c, ok := placed[p]; ok {
			return c, true
		}
		pc, ok := b.At(p)
		return pc.Card, ok
	}

	first := ms.At(0).Pos
	if n > 1 {
		a, ok := sharedAxis(ms)
		if !ok {
			return 0, false
		}
		// every placement must be on the single line through the first one
		l := lineThrough(first, a, at)
		onLine := 0
		dx, dy := a.step()
		for i, p := 0, l.start; i < len(l.cards); i, p = i+1, p.Add(dx, dy) {
			if _, ok := placed[p]; ok {
				onLine++
			}
		}
		if onLine != n {
			return 0, false
		}
	}

	if !b.IsEmpty() && !touchesBoard(placed, b) {
		return 0, false
	}

	type lineKey struct {
		start board.Position
		dir   axis
	}
	seen := map[lineKey]bool{}
	score, lots, lines := 0, 0, 0
	for p := range placed {
		for _, a := range []axis{horizontal, vertical} {
			l := lineThrough(p, a, at)
			k := lineKey{l.start, l.dir}
			if seen[k] || len(l.cards) < 2 {
				continue
			}
			seen[k] = true
			if !l.valid() {
				return 0, false
			}
			lines++
			score += l.sum()
			if len(l.cards) == MaxLineLength {
				lots++
			}
		}
	}
	if lines == 0 {
		// a lone card on an empty board
		score = ms.At(0).Card.Value
	}
	for i := 0; i < lots; i++ {
		score *= 2
	}
	if n == FullHandBonusCards {
		score *= 2
	}
	return score, true
}

func sharedAxis(ms move.MoveSet) (axis, bool) {
	sameX, sameY := true, true
	first := ms.At(0).Pos
	for i := 1; i < ms.Len(); i++ {
		p := ms.At(i).Pos
		sameX = sameX && p.X == first.X
		sameY = sameY && p.Y == first.Y
	}
	switch {
	case sameY:
		return horizontal, true
	case sameX:
		return vertical, true
	}
	return 0, false
}

func touchesBoard(placed map[board.Position]card.Card, b *board.Board) bool {
	for p := range placed {
		for _, nb := range []board.Position{p.Add(0, -1), p.Add(0, 1), p.Add(1, 0), p.Add(-1, 0)} {
			if b.Occupied(nb) {
				return true
			}
		}
	}
	return false
}
