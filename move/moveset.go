package move

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
)

// A MoveSet is an ordered sequence of placements making up one candidate
// turn. Order is construction order and is part of the set's identity.
//
// A MoveSet is never mutated once built: Append returns a new MoveSet with
// its own backing array, so sibling branches of a search can extend the
// same parent freely.
type MoveSet struct {
	placements []board.PlacedCard
}

// NewMoveSet creates a move-set holding the given placements, in order.
func NewMoveSet(placements ...board.PlacedCard) MoveSet {
	p := make([]board.PlacedCard, len(placements))
	copy(p, placements)
	return MoveSet{placements: p}
}

// Append returns a copy of ms with pc added at the end.
func (ms MoveSet) Append(pc board.PlacedCard) MoveSet {
	p := make([]board.PlacedCard, len(ms.placements), len(ms.placements)+1)
	copy(p, ms.placements)
	return MoveSet{placements: append(p, pc)}
}

// Concat returns a new move-set with every placement of other after the
// placements of ms.
func (ms MoveSet) Concat(other MoveSet) MoveSet {
	p := make([]board.PlacedCard, 0, len(ms.placements)+len(other.placements))
	p = append(p, ms.placements...)
	return MoveSet{placements: append(p, other.placements...)}
}

func (ms MoveSet) Len() int {
	return len(ms.placements)
}

func (ms MoveSet) IsEmpty() bool {
	return len(ms.placements) == 0
}

// At returns the i-th placement.
func (ms MoveSet) At(i int) board.PlacedCard {
	return ms.placements[i]
}

// Last returns the most recent placement. It panics on an empty move-set.
func (ms MoveSet) Last() board.PlacedCard {
	return ms.placements[len(ms.placements)-1]
}

// Placements returns a copy of the placements.
func (ms MoveSet) Placements() []board.PlacedCard {
	ret := make([]board.PlacedCard, len(ms.placements))
	copy(ret, ms.placements)
	return ret
}

// Cards returns the cards played, in order.
func (ms MoveSet) Cards() []card.Card {
	ret := make([]card.Card, len(ms.placements))
	for i, pc := range ms.placements {
		ret[i] = pc.Card
	}
	return ret
}

// Positions returns the target positions, in order.
func (ms MoveSet) Positions() []board.Position {
	ret := make([]board.Position, len(ms.placements))
	for i, pc := range ms.placements {
		ret[i] = pc.Pos
	}
	return ret
}

// Prefix returns the move-set made of the first n placements.
func (ms MoveSet) Prefix(n int) MoveSet {
	return NewMoveSet(ms.placements[:n]...)
}

// Key is the canonical encoding of the move-set. It is order sensitive:
// two move-sets are the same entry if and only if their keys are equal.
func (ms MoveSet) Key() string {
	var sb strings.Builder
	for i, pc := range ms.placements {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Quote(pc.Owner))
		sb.WriteByte(':')
		sb.WriteString(pc.Card.String())
		fmt.Fprintf(&sb, "@%d,%d", pc.Pos.X, pc.Pos.Y)
	}
	return sb.String()
}

// ShortDescription is a user-facing description such as "RC2@0,1 RC3@0,2".
func (ms MoveSet) ShortDescription() string {
	if len(ms.placements) == 0 {
		return "(Pass)"
	}
	strs := make([]string, len(ms.placements))
	for i, pc := range ms.placements {
		strs[i] = pc.String()
	}
	return strings.Join(strs, " ")
}

func (ms MoveSet) String() string {
	return "<moveset " + ms.ShortDescription() + ">"
}

// FromString parses a user-entered move-set: CARD@X,Y entries separated
// by whitespace, all owned by owner.
func FromString(s, owner string) (MoveSet, error) {
	fields := strings.Fields(s)
	p := make([]board.PlacedCard, 0, len(fields))
	for _, f := range fields {
		pc, err := board.ParsePlacedCard(f)
		if err != nil {
			return MoveSet{}, err
		}
		pc.Owner = owner
		p = append(p, pc)
	}
	return MoveSet{placements: p}, nil
}
