package board

import (
	"fmt"

	"github.com/iotagame/iota/card"
)

// Position is a location on the (unbounded) playing surface. X grows to
// the east and Y grows to the south.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Adjacent returns true if q is one of the four orthogonal neighbours of p.
func (p Position) Adjacent(q Position) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx+dy*dy == 1
}

// A PlacedCard is a card on the board (or proposed for the board), along
// with who played it. The seed card has no owner.
type PlacedCard struct {
	Card  card.Card
	Owner string
	Pos   Position
}

// NoOwner is the owner of the seed card.
const NoOwner = ""

// NewPlacedCard creates a placed card.
func NewPlacedCard(c card.Card, owner string, x, y int) PlacedCard {
	return PlacedCard{Card: c, Owner: owner, Pos: Position{X: x, Y: y}}
}

func (pc PlacedCard) String() string {
	return fmt.Sprintf("%v@%v", pc.Card, pc.Pos)
}

// A Board is every card that has been played, in play order, plus an index
// by position.
type Board struct {
	cards []PlacedCard
	index map[Position]int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{index: make(map[Position]int)}
}

// FromCards creates a board holding the given cards, in order. It returns
// an error if two of them share a position.
func FromCards(cards []PlacedCard) (*Board, error) {
	b := NewBoard()
	for _, pc := range cards {
		if err := b.Place(pc); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Place puts a card on the board.
func (b *Board) Place(pc PlacedCard) error {
	if _, ok := b.index[pc.Pos]; ok {
		return fmt.Errorf("%w: %v", ErrOccupied, pc.Pos)
	}
	b.index[pc.Pos] = len(b.cards)
	b.cards = append(b.cards, pc)
	return nil
}

// Copy returns an independent snapshot of the board.
func (b *Board) Copy() *Board {
	n := &Board{
		cards: make([]PlacedCard, len(b.cards)),
		index: make(map[Position]int, len(b.index)),
	}
	copy(n.cards, b.cards)
	for k, v := range b.index {
		n.index[k] = v
	}
	return n
}

// Cards returns a copy of the placed cards, in the order they were played.
func (b *Board) Cards() []PlacedCard {
	ret := make([]PlacedCard, len(b.cards))
	copy(ret, b.cards)
	return ret
}

// NumCards returns how many cards are on the board.
func (b *Board) NumCards() int {
	return len(b.cards)
}

func (b *Board) IsEmpty() bool {
	return len(b.cards) == 0
}

// At returns the card at the given position, if any.
func (b *Board) At(p Position) (PlacedCard, bool) {
	idx, ok := b.index[p]
	if !ok {
		return PlacedCard{}, false
	}
	return b.cards[idx], true
}

// Occupied returns true if a card sits at p.
func (b *Board) Occupied(p Position) bool {
	_, ok := b.index[p]
	return ok
}

// Bounds returns the smallest rectangle holding every card. ok is false on
// an empty board.
func (b *Board) Bounds() (min, max Position, ok bool) {
	if len(b.cards) == 0 {
		return Position{}, Position{}, false
	}
	min, max = b.cards[0].Pos, b.cards[0].Pos
	for _, pc := range b.cards[1:] {
		if pc.Pos.X < min.X {
			min.X = pc.Pos.X
		}
		if pc.Pos.Y < min.Y {
			min.Y = pc.Pos.Y
		}
		if pc.Pos.X > max.X {
			max.X = pc.Pos.X
		}
		if pc.Pos.Y > max.Y {
			max.Y = pc.Pos.Y
		}
	}
	return min, max, true
}
