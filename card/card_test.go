package card

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestFromString(t *testing.T) {
	is := is.New(t)
	type testcase struct {
		in   string
		card Card
		err  error
	}
	cases := []testcase{
		{"RC1", Card{Red, Circle, 1}, nil},
		{"gs2", Card{Green, Square, 2}, nil},
		{" BT3 ", Card{Blue, Triangle, 3}, nil},
		{"YX4", Card{Yellow, Cross, 4}, nil},
		{"RC5", Card{}, ErrBadCard},
		{"QC1", Card{}, ErrBadCard},
		{"RC", Card{}, ErrBadCard},
		{"", Card{}, ErrBadCard},
	}
	for _, tc := range cases {
		c, err := FromString(tc.in)
		is.True(errors.Is(err, tc.err))
		is.Equal(c, tc.card)
	}
}

func TestStringRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, c := range FullSet() {
		parsed, err := FromString(c.String())
		is.NoErr(err)
		is.Equal(parsed, c)
	}
}

func TestFullSet(t *testing.T) {
	is := is.New(t)
	set := FullSet()
	is.Equal(len(set), 64)
	seen := map[Card]bool{}
	for _, c := range set {
		is.True(c.Valid())
		is.True(!seen[c])
		seen[c] = true
	}
}

func TestLongString(t *testing.T) {
	is := is.New(t)
	is.Equal(Card{Yellow, Triangle, 3}.LongString(), "yellow triangle 3")
}

func TestHandWithout(t *testing.T) {
	is := is.New(t)
	h, err := HandFromString("RC1 RC1 GS2")
	is.NoErr(err)

	h2 := h.Without(0)
	is.Equal(h2.String(), "RC1 GS2")
	// receiver untouched
	is.Equal(h.String(), "RC1 RC1 GS2")

	h3 := h2.Without(1)
	is.Equal(h3.String(), "RC1")
	is.Equal(h.String(), "RC1 RC1 GS2")
}

func TestHandRemove(t *testing.T) {
	is := is.New(t)
	h, err := HandFromString("RC1 RC1 GS2 BT3")
	is.NoErr(err)

	is.True(h.Contains([]Card{{Red, Circle, 1}, {Red, Circle, 1}}))
	is.True(!h.Contains([]Card{{Green, Square, 2}, {Green, Square, 2}}))

	ok := h.Remove([]Card{{Red, Circle, 1}, {Yellow, Cross, 4}})
	is.True(!ok)
	is.Equal(len(h), 4)

	ok = h.Remove([]Card{{Red, Circle, 1}, {Blue, Triangle, 3}})
	is.True(ok)
	is.Equal(h.String(), "RC1 GS2")
}
