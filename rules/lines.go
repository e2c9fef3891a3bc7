package rules

import (
	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
)

type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) step() (int, int) {
	if a == horizontal {
		return 1, 0
	}
	return 0, 1
}

// line is a maximal run of adjacent cards along one axis.
type line struct {
	start board.Position
	dir   axis
	cards []card.Card
}

type lookupFunc func(board.Position) (card.Card, bool)

// lineThrough walks both ways from p along a and returns the run holding
// p. p itself must be filled.
func lineThrough(p board.Position, a axis, at lookupFunc) line {
	dx, dy := a.step()
	start := p
	for {
		prev := start.Add(-dx, -dy)
		if _, ok := at(prev); !ok {
			break
		}
		start = prev
	}
	l := line{start: start, dir: a}
	for cur := start; ; cur = cur.Add(dx, dy) {
		c, ok := at(cur)
		if !ok {
			break
		}
		l.cards = append(l.cards, c)
	}
	return l
}

// valid checks the line-formation constraints: no longer than
// MaxLineLength, no repeated card, and each attribute all alike or all
// different.
func (l line) valid() bool {
	if len(l.cards) > MaxLineLength {
		return false
	}
	seen := make(map[card.Card]bool, len(l.cards))
	for _, c := range l.cards {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return allSameOrDistinct(l.cards, func(c card.Card) int { return int(c.Colour) }) &&
		allSameOrDistinct(l.cards, func(c card.Card) int { return int(c.Shape) }) &&
		allSameOrDistinct(l.cards, func(c card.Card) int { return c.Value })
}

func (l line) sum() int {
	s := 0
	for _, c := range l.cards {
		s += c.Value
	}
	return s
}

func allSameOrDistinct(cards []card.Card, attr func(card.Card) int) bool {
	vals := make(map[int]struct{}, len(cards))
	for _, c := range cards {
		vals[attr(c)] = struct{}{}
	}
	return len(vals) == 1 || len(vals) == len(cards)
}
