package movegen

import (
	"errors"
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/move"
	"github.com/iotagame/iota/rules"
	"github.com/iotagame/iota/testhelpers"
)

var chain = rules.LegalityFunc(testhelpers.AscendingChain)

func keysOf(c *MoveCollection) []string {
	k := c.Keys()
	sort.Strings(k)
	return k
}

func TestSingleCardSeedsEveryNeighbour(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0")
	hand := testhelpers.MustHand("RC2")

	res, err := NewEnumerator(chain).Enumerate(b, hand, "p1")
	is.NoErr(err)
	is.Equal(res.Len(), 4)
	is.Equal(keysOf(res), []string{
		`"p1":RC2@-1,0`,
		`"p1":RC2@0,-1`,
		`"p1":RC2@0,1`,
		`"p1":RC2@1,0`,
	})
	for _, ms := range res.MoveSets() {
		is.Equal(ms.Len(), 1)
	}
}

func TestEmptyHand(t *testing.T) {
	is := is.New(t)
	res, err := NewEnumerator(chain).Enumerate(testhelpers.MustBoard("RC1@0,0"), card.Hand{}, "p1")
	is.NoErr(err)
	is.Equal(res.Len(), 0)

	res, err = NewEnumerator(chain).Enumerate(testhelpers.MustBoard("RC1@0,0"), nil, "p1")
	is.NoErr(err)
	is.Equal(res.Len(), 0)
}

func TestEmptyBoard(t *testing.T) {
	is := is.New(t)
	anything := rules.LegalityFunc(testhelpers.Anything)
	res, err := NewEnumerator(anything).Enumerate(board.NewBoard(), testhelpers.MustHand("RC1 RC2"), "p1")
	is.NoErr(err)
	is.Equal(res.Len(), 0)
}

func TestTwoCardChain(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0")
	hand := testhelpers.MustHand("RC2 RC3")

	for _, mode := range []ContinuationMode{ContinueStraight, ContinueNorthAfterFirst} {
		res, err := NewEnumerator(chain, WithContinuation(mode)).Enumerate(b, hand, "p1")
		is.NoErr(err)

		singles := res.WithLength(1)
		doubles := res.WithLength(2)
		is.Equal(len(singles), 4)
		// from each seed, RC3 can go on any side except back onto RC1.
		is.Equal(len(doubles), 12)
		is.Equal(res.Len(), 16)

		south := testhelpers.MustMoveSet("RC2@0,1 RC3@0,2", "p1")
		is.True(res.Contains(south))
		bent := testhelpers.MustMoveSet("RC2@0,1 RC3@1,1", "p1")
		is.True(res.Contains(bent))
		// RC3 can never seed; it does not follow RC1.
		is.True(!res.Contains(testhelpers.MustMoveSet("RC3@0,1", "p1")))
	}
}

func TestContinuationModes(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0")
	// Values past four are fine for this oracle and let a chain run long
	// enough to show where the two modes differ.
	hand := card.Hand{
		card.New(card.Red, card.Circle, 2),
		card.New(card.Red, card.Circle, 3),
		card.New(card.Red, card.Circle, 4),
		card.New(card.Red, card.Circle, 5),
	}
	straightLine := move.NewMoveSet(
		board.NewPlacedCard(hand[0], "p1", 0, 1),
		board.NewPlacedCard(hand[1], "p1", 0, 2),
		board.NewPlacedCard(hand[2], "p1", 0, 3),
		board.NewPlacedCard(hand[3], "p1", 0, 4),
	)
	elbow := move.NewMoveSet(
		board.NewPlacedCard(hand[0], "p1", 0, 1),
		board.NewPlacedCard(hand[1], "p1", 1, 1),
		board.NewPlacedCard(hand[2], "p1", 2, 1),
		board.NewPlacedCard(hand[3], "p1", 2, 0),
	)

	straight, err := NewEnumerator(chain).Enumerate(b, hand, "p1")
	is.NoErr(err)
	legacy, err := NewEnumerator(chain, WithContinuation(ContinueNorthAfterFirst)).Enumerate(b, hand, "p1")
	is.NoErr(err)

	is.True(straight.Contains(straightLine))
	is.True(!straight.Contains(elbow))

	is.True(!legacy.Contains(straightLine))
	is.True(legacy.Contains(elbow))
	// both modes agree up to three placements
	is.True(legacy.Contains(straightLine.Prefix(3)))
	is.Equal(len(straight.WithLength(3)), len(legacy.WithLength(3)))
}

func TestParseContinuationMode(t *testing.T) {
	is := is.New(t)
	m, err := ParseContinuationMode("north")
	is.NoErr(err)
	is.Equal(m, ContinueNorthAfterFirst)
	m, err = ParseContinuationMode("")
	is.NoErr(err)
	is.Equal(m, ContinueStraight)
	_, err = ParseContinuationMode("sideways")
	is.True(errors.Is(err, ErrUnknownContinuation))
	is.Equal(ContinueNorthAfterFirst.String(), "north")
}

func TestOutOfWindowIsAnError(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0 RC2@0,32")
	res, err := NewEnumerator(chain).Enumerate(b, testhelpers.MustHand("RC2"), "p1")
	is.True(errors.Is(err, ErrOutOfWindow))
	is.True(res == nil)
}

func TestNoSeedsOnBorderRing(t *testing.T) {
	is := is.New(t)
	anything := rules.LegalityFunc(testhelpers.Anything)
	b := testhelpers.MustBoard("RC1@31,0")
	res, err := NewEnumerator(anything).Enumerate(b, testhelpers.MustHand("GS2"), "p1")
	is.NoErr(err)
	// east of x=31 is the ring
	is.Equal(keysOf(res), []string{
		`"p1":GS2@30,0`,
		`"p1":GS2@31,-1`,
		`"p1":GS2@31,1`,
	})

	// and extensions stop short of it
	res, err = NewEnumerator(anything).Enumerate(testhelpers.MustBoard("RC1@29,0"),
		testhelpers.MustHand("GS2 GS3 GS4"), "p1")
	is.NoErr(err)
	for _, ms := range res.MoveSets() {
		for _, p := range ms.Positions() {
			is.True(InInterior(p))
		}
	}
	is.True(res.Contains(testhelpers.MustMoveSet("GS2@30,0 GS3@31,0", "p1")))
}

func TestOracleSeesOriginalBoard(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0 RC2@1,0")
	hand := testhelpers.MustHand("RC3 RC4 GS1")
	boardKey := b.ToNotation()

	calls := 0
	spy := rules.LegalityFunc(func(ms move.MoveSet, snap *board.Board) bool {
		calls++
		is.Equal(snap.ToNotation(), boardKey)
		return rules.Standard{}.IsLegal(ms, snap)
	})
	_, err := NewEnumerator(spy).Enumerate(b, hand, "p1")
	is.NoErr(err)
	is.True(calls > 0)

	// inputs untouched
	is.Equal(b.ToNotation(), boardKey)
	is.Equal(hand.String(), "RC3 RC4 GS1")
}

func TestOraclePanicPropagates(t *testing.T) {
	boom := rules.LegalityFunc(func(move.MoveSet, *board.Board) bool {
		panic("oracle failure")
	})
	assert.PanicsWithValue(t, "oracle failure", func() {
		NewEnumerator(boom).Enumerate(testhelpers.MustBoard("RC1@0,0"),
			testhelpers.MustHand("RC2"), "p1")
	})
}

func TestDuplicateHandCards(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0")
	// two instances of the same card: the seeds collapse, but a two-card
	// set may use both instances.
	hand := testhelpers.MustHand("RC2 RC2")
	anything := rules.LegalityFunc(testhelpers.Anything)
	res, err := NewEnumerator(anything).Enumerate(b, hand, "p1")
	is.NoErr(err)
	is.Equal(len(res.WithLength(1)), 4)
	is.True(res.Duplicates() > 0)
	is.True(res.Contains(testhelpers.MustMoveSet("RC2@0,1 RC2@0,2", "p1")))
	is.Equal(len(res.WithLength(3)), 0)
}

func TestRanked(t *testing.T) {
	is := is.New(t)
	b := testhelpers.MustBoard("RC1@0,0 RC2@1,0")
	hand := testhelpers.MustHand("RC3 RC4")
	res, err := NewEnumerator(rules.Standard{}).Enumerate(b, hand, "p1")
	is.NoErr(err)

	ranked := res.Ranked(rules.Standard{}, b)
	is.Equal(len(ranked), res.Len())
	// RC3 then RC4 to the east completes a lot: (1+2+3+4) * 2
	is.Equal(ranked[0].Score, 20)
	for i := 1; i < len(ranked); i++ {
		is.True(ranked[i-1].Score >= ranked[i].Score)
	}
}

// randomGame grows a board with legal standard moves chosen at random and
// returns it along with a fresh hand.
func randomGame(t *testing.T, seed byte, turns int) (*board.Board, card.Hand) {
	rng := frand.NewCustom([]byte{seed, 31: 0}, 1024, 12)
	deck := card.NewDeck([32]byte{seed})
	first, _ := deck.Deal()
	b := board.NewBoard()
	if err := b.Place(board.NewPlacedCard(first, board.NoOwner, 0, 0)); err != nil {
		t.Fatal(err)
	}
	gen := NewEnumerator(rules.Standard{})
	for i := 0; i < turns && deck.Remaining() >= 4; i++ {
		hand := card.Hand(deck.DealAtMost(4))
		res, err := gen.Enumerate(b, hand, "p1")
		if err != nil {
			t.Fatal(err)
		}
		if res.Len() == 0 {
			continue
		}
		choice := res.MoveSets()[rng.Intn(res.Len())]
		for _, pc := range choice.Placements() {
			if err := b.Place(pc); err != nil {
				t.Fatal(err)
			}
		}
	}
	return b, card.Hand(deck.DealAtMost(4))
}

func TestEnumerationProperties(t *testing.T) {
	is := is.New(t)
	oracle := rules.Standard{}
	for seed := byte(1); seed <= 12; seed++ {
		b, hand := randomGame(t, seed, int(seed)/2+1)
		for _, mode := range []ContinuationMode{ContinueStraight, ContinueNorthAfterFirst} {
			gen := NewEnumerator(oracle, WithContinuation(mode))
			res, err := gen.Enumerate(b, hand, "p1")
			is.NoErr(err)

			for _, ms := range res.MoveSets() {
				// legal when checked again
				is.True(oracle.IsLegal(ms, b))
				// no hand instance used twice
				is.True(hand.Contains(ms.Cards()))
				// every strict prefix is present
				for n := 1; n < ms.Len(); n++ {
					is.True(res.Contains(ms.Prefix(n)))
				}
				for i := 0; i < ms.Len(); i++ {
					is.Equal(ms.At(i).Owner, "p1")
				}
			}

			// deterministic
			again, err := gen.Enumerate(b, hand, "p1")
			is.NoErr(err)
			is.Equal(again.Keys(), res.Keys())
		}
	}
}
