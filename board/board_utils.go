package board

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iotagame/iota/card"
)

var (
	ColorSupport = os.Getenv("IOTA_DISABLE_COLOR") != "on"
)

var ansiColours = [card.NumColours]string{"\033[31m", "\033[32m", "\033[34m", "\033[33m"}

const ansiReset = "\033[0m"

func cellString(pc PlacedCard) string {
	s := pc.Card.String()
	if ColorSupport {
		return ansiColours[pc.Card.Colour] + s + ansiReset
	}
	return s
}

// ToDisplayText draws the occupied part of the board with a one cell margin
// around it.
func (b *Board) ToDisplayText() string {
	min, max, ok := b.Bounds()
	if !ok {
		return "\n(empty board)\n"
	}
	min = min.Add(-1, -1)
	max = max.Add(1, 1)

	var sb strings.Builder
	sb.WriteString("\n    ")
	for x := min.X; x <= max.X; x++ {
		fmt.Fprintf(&sb, "%4d", x)
	}
	sb.WriteString("\n")
	for y := min.Y; y <= max.Y; y++ {
		fmt.Fprintf(&sb, "%4d", y)
		for x := min.X; x <= max.X; x++ {
			pc, ok := b.At(Position{X: x, Y: y})
			if !ok {
				sb.WriteString("   .")
				continue
			}
			sb.WriteString(" " + cellString(pc))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToNotation writes the board in the compact notation accepted by
// FromNotation: whitespace-separated [owner:]CARD@X,Y entries, in play
// order.
func (b *Board) ToNotation() string {
	strs := make([]string, len(b.cards))
	for i, pc := range b.cards {
		strs[i] = PlacedCardNotation(pc)
	}
	return strings.Join(strs, " ")
}

// PlacedCardNotation renders a single placed card as [owner:]CARD@X,Y.
func PlacedCardNotation(pc PlacedCard) string {
	if pc.Owner == NoOwner {
		return pc.String()
	}
	return pc.Owner + ":" + pc.String()
}

// ParsePlacedCard parses [owner:]CARD@X,Y.
func ParsePlacedCard(s string) (PlacedCard, error) {
	owner := NoOwner
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		owner = s[:i]
		s = s[i+1:]
	}
	cardStr, posStr, found := strings.Cut(s, "@")
	if !found {
		return PlacedCard{}, fmt.Errorf("%w: missing @ in %q", ErrBadFormat, s)
	}
	c, err := card.FromString(cardStr)
	if err != nil {
		return PlacedCard{}, err
	}
	xs, ys, found := strings.Cut(posStr, ",")
	if !found {
		return PlacedCard{}, fmt.Errorf("%w: bad position %q", ErrBadFormat, posStr)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return PlacedCard{}, fmt.Errorf("%w: bad x in %q", ErrBadFormat, posStr)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return PlacedCard{}, fmt.Errorf("%w: bad y in %q", ErrBadFormat, posStr)
	}
	return PlacedCard{Card: c, Owner: owner, Pos: Position{X: x, Y: y}}, nil
}

// FromNotation builds a board from the notation written by ToNotation.
func FromNotation(s string) (*Board, error) {
	b := NewBoard()
	for _, f := range strings.Fields(s) {
		pc, err := ParsePlacedCard(f)
		if err != nil {
			return nil, err
		}
		if err := b.Place(pc); err != nil {
			return nil, err
		}
	}
	return b, nil
}
