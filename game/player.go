package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/move"
)

// Player is anything that can take a turn. MakeMove returns the placements
// the player wants to make; an empty move-set means the player would
// rather discard, and Discard is then asked which cards to give back.
type Player interface {
	Name() string
	MakeMove(v View) move.MoveSet
	Discard(v View) []card.Card
}

type playerState struct {
	Player

	hand   card.Hand
	points int
	turns  int
}

func (p *playerState) resetScore() {
	p.points = 0
	p.turns = 0
}

// refill draws until the hand is full or the deck runs out.
func (p *playerState) refill(d *card.Deck) {
	drew := d.DealAtMost(HandSize - len(p.hand))
	log.Debug().Str("player", p.Name()).Str("drew", card.Hand(drew).String()).
		Msg("refill")
	p.hand = append(p.hand, drew...)
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%17v %4v", onturn, p.Name(), p.hand.String(), p.points)
}

type playerStates []*playerState

func (p playerStates) resetScore() {
	for idx := range p {
		p[idx].resetScore()
	}
}

func (p playerStates) byName(name string) *playerState {
	for _, ps := range p {
		if ps.Name() == name {
			return ps
		}
	}
	return nil
}

// View is what a player may see of the game on its turn. Everything it
// returns is a copy.
type View struct {
	g    *Game
	self *playerState
}

// Name returns the name of the player this view belongs to.
func (v View) Name() string {
	return v.self.Name()
}

func (v View) Board() *board.Board {
	return v.g.board.Copy()
}

func (v View) Hand() card.Hand {
	return v.self.hand.Copy()
}

func (v View) RawScore() int {
	return v.self.points
}

// NetScores returns this player's lead over each opponent, in seating
// order.
func (v View) NetScores() []int {
	var ret []int
	for _, p := range v.g.players {
		if p != v.self {
			ret = append(ret, v.self.points-p.points)
		}
	}
	return ret
}

// OpponentHandSizes returns how many cards each opponent holds, in seating
// order.
func (v View) OpponentHandSizes() []int {
	var ret []int
	for _, p := range v.g.players {
		if p != v.self {
			ret = append(ret, len(p.hand))
		}
	}
	return ret
}

func (v View) DeckRemaining() int {
	return v.g.deck.Remaining()
}

func (v View) Turn() int {
	return v.g.turnnum
}
