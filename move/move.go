package move

import (
	"fmt"

	"github.com/iotagame/iota/card"
)

// MoveType is a type of move; a play, a discard or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeDiscard
	MoveTypePass
)

func (t MoveType) String() string {
	switch t {
	case MoveTypePlay:
		return "Play"
	case MoveTypeDiscard:
		return "Discard"
	case MoveTypePass:
		return "Pass"
	}
	return "UNHANDLED"
}

// Move is a turn that actually happened in a game. Plays carry the
// placements; discards carry the discarded cards.
type Move struct {
	action    MoveType
	player    string
	turn      int
	score     int
	placement MoveSet
	discarded []card.Card
	hand      card.Hand
}

// NewPlayMove creates a scoring play.
func NewPlayMove(player string, turn int, ms MoveSet, score int, hand card.Hand) *Move {
	return &Move{action: MoveTypePlay, player: player, turn: turn,
		placement: ms, score: score, hand: hand.Copy()}
}

// NewDiscardMove creates a discard.
func NewDiscardMove(player string, turn int, discarded []card.Card, hand card.Hand) *Move {
	d := make([]card.Card, len(discarded))
	copy(d, discarded)
	return &Move{action: MoveTypeDiscard, player: player, turn: turn,
		discarded: d, hand: hand.Copy()}
}

// NewPassMove creates a pass. Failed plays and failed discards are passes.
func NewPassMove(player string, turn int, hand card.Hand) *Move {
	return &Move{action: MoveTypePass, player: player, turn: turn, hand: hand.Copy()}
}

func (m *Move) Action() MoveType { return m.action }
func (m *Move) Player() string   { return m.player }
func (m *Move) Turn() int        { return m.turn }
func (m *Move) Score() int       { return m.score }

// MoveSet returns the placements of a play.
func (m *Move) MoveSet() MoveSet { return m.placement }

// Discarded returns the cards given back by a discard.
func (m *Move) Discarded() []card.Card { return m.discarded }

// Hand returns the hand the player held before this move.
func (m *Move) Hand() card.Hand { return m.hand }

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return m.placement.ShortDescription()
	case MoveTypeDiscard:
		return fmt.Sprintf("(discard %v)", card.Hand(m.discarded))
	case MoveTypePass:
		return "(Pass)"
	}
	return "UNHANDLED"
}

func (m *Move) String() string {
	return fmt.Sprintf("<turn %d %s action: %v %s score: %d hand: %v>",
		m.turn, m.player, m.action, m.ShortDescription(), m.score, m.hand)
}
