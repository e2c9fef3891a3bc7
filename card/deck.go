package card

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

var ErrDeckEmpty = errors.New("deck is empty")

// A Deck is the face-down pile cards are dealt from.
type Deck struct {
	cards []Card
	rng   *frand.RNG
}

// NewDeck creates a full, shuffled deck. The seed makes the shuffle (and
// every later reshuffle) reproducible.
func NewDeck(seed [32]byte) *Deck {
	d := &Deck{
		cards: FullSet(),
		rng:   frand.NewCustom(seed[:], 1024, 12),
	}
	d.shuffle()
	return d
}

// NewRandomDeck creates a full deck shuffled from a fresh random seed.
func NewRandomDeck() *Deck {
	var seed [32]byte
	frand.Read(seed[:])
	return NewDeck(seed)
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Remaining returns how many cards are left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) HasCard() bool {
	return len(d.cards) > 0
}

// Deal takes the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// DealN deals exactly n cards, or none at all if there are fewer than n.
func (d *Deck) DealN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("tried to deal %v cards, deck has %v: %w",
			n, len(d.cards), ErrDeckEmpty)
	}
	return d.DealAtMost(n), nil
}

// DealAtMost deals up to n cards. It can deal fewer, or none.
func (d *Deck) DealAtMost(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	dealt := make([]Card, n)
	for i := 0; i < n; i++ {
		dealt[i], _ = d.Deal()
	}
	return dealt
}

// Return puts cards back into the deck and reshuffles it.
func (d *Deck) Return(cards []Card) {
	if len(cards) == 0 {
		return
	}
	d.cards = append(d.cards, cards...)
	d.shuffle()
	log.Debug().Int("returned", len(cards)).Int("remaining", len(d.cards)).
		Msg("cards returned to deck")
}

// Peek returns a copy of the undealt cards, top of the deck last.
func (d *Deck) Peek() []Card {
	ret := make([]Card, len(d.cards))
	copy(ret, d.cards)
	return ret
}
