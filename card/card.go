// Package card contains the card values of the game: a colour, a shape and
// a face value. Cards are plain values and compare with ==.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// Colour is one of the four card colours.
type Colour uint8

// Shape is one of the four card shapes.
type Shape uint8

const (
	Red Colour = iota
	Green
	Blue
	Yellow

	NumColours = 4
)

const (
	Circle Shape = iota
	Square
	Triangle
	Cross

	NumShapes = 4
)

const (
	MinValue = 1
	MaxValue = 4
)

var (
	colourLetters = [NumColours]byte{'R', 'G', 'B', 'Y'}
	shapeLetters  = [NumShapes]byte{'C', 'S', 'T', 'X'}

	colourNames = [NumColours]string{"red", "green", "blue", "yellow"}
	shapeNames  = [NumShapes]string{"circle", "square", "triangle", "cross"}
)

var ErrBadCard = errors.New("bad card notation")

func (c Colour) String() string {
	if int(c) >= NumColours {
		return "?"
	}
	return colourNames[c]
}

func (s Shape) String() string {
	if int(s) >= NumShapes {
		return "?"
	}
	return shapeNames[s]
}

// A Card is an immutable colour/shape/value triple.
type Card struct {
	Colour Colour
	Shape  Shape
	Value  int
}

// New makes a card. It does not validate its arguments; use Valid for that.
func New(c Colour, s Shape, v int) Card {
	return Card{Colour: c, Shape: s, Value: v}
}

// Valid returns true if every attribute of the card is in range.
func (c Card) Valid() bool {
	return int(c.Colour) < NumColours && int(c.Shape) < NumShapes &&
		c.Value >= MinValue && c.Value <= MaxValue
}

// String returns the compact notation for the card, for example RC1 for
// a red circle of value 1.
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("<invalid %d/%d/%d>", c.Colour, c.Shape, c.Value)
	}
	return fmt.Sprintf("%c%c%d", colourLetters[c.Colour], shapeLetters[c.Shape], c.Value)
}

// LongString is the user-visible long form, e.g. "red circle 1".
func (c Card) LongString() string {
	return fmt.Sprintf("%v %v %d", c.Colour, c.Shape, c.Value)
}

// FromString parses the compact notation produced by String. It is
// case-insensitive.
func FromString(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	col := strings.IndexByte(string(colourLetters[:]), s[0])
	shp := strings.IndexByte(string(shapeLetters[:]), s[1])
	if col < 0 || shp < 0 || s[2] < '0'+MinValue || s[2] > '0'+MaxValue {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	return Card{Colour: Colour(col), Shape: Shape(shp), Value: int(s[2] - '0')}, nil
}

// ListFromString parses a whitespace or comma separated list of cards.
func ListFromString(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := FromString(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FullSet returns every distinct card of the game, in a fixed order.
func FullSet() []Card {
	cards := make([]Card, 0, NumColours*NumShapes*(MaxValue-MinValue+1))
	for c := Colour(0); c < NumColours; c++ {
		for s := Shape(0); s < NumShapes; s++ {
			for v := MinValue; v <= MaxValue; v++ {
				cards = append(cards, Card{Colour: c, Shape: s, Value: v})
			}
		}
	}
	return cards
}
