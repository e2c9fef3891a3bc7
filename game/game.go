// Package game runs a game of iota: it owns the deck, the board, the
// hands and the scores, and asks each Player for a move in turn. A Game
// doesn't care how a player decides; strategies live in the player
// package.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/move"
	"github.com/iotagame/iota/rules"
)

const (
	HandSize = 4

	// MaxDiscardTurns is how many turns in a row may go by with discards
	// before the game is called.
	MaxDiscardTurns = 4
	// MaxPassTurns is how many failed turns in a row end the game.
	MaxPassTurns = 2
	// GoingOutMultiplier applies to the score of a play that empties the
	// player's hand once the deck is gone.
	GoingOutMultiplier = 2
)

var (
	ErrTooFewPlayers  = errors.New("a game needs at least two players")
	ErrDuplicateName  = errors.New("player names must be unique")
	ErrGameOver       = errors.New("game is over")
	ErrTooManyPlayers = errors.New("not enough cards to deal every player a hand")
)

// PlayState is where a game is in its lifetime.
type PlayState uint8

const (
	Playing PlayState = iota
	GameOver
)

// Game is the internal game structure that controls the business logic of
// the game: dealing, checking moves, scoring and deciding when it ends.
type Game struct {
	id      string
	oracle  rules.Oracle
	seed    [32]byte
	board   *board.Board
	deck    *card.Deck
	players playerStates

	playing     PlayState
	onturn      int
	turnnum     int
	passCounter int
	drawCounter int

	history []*move.Move
}

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the seed used for seating and for the deck, making the
// game reproducible for a given set of deterministic players.
func WithSeed(seed [32]byte) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithRules replaces the standard rules.
func WithRules(o rules.Oracle) Option {
	return func(g *Game) {
		g.oracle = o
	}
}

// NewGame creates a game between the given players and sets it up: seats
// are shuffled, every player is dealt a hand, and one card is turned up at
// the origin to start the board.
func NewGame(players []Player, opts ...Option) (*Game, error) {
	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}
	g := &Game{
		id:     uuid.NewString(),
		oracle: rules.Standard{},
	}
	frand.Read(g.seed[:])
	for _, o := range opts {
		o(g)
	}

	seen := map[string]bool{}
	g.players = make(playerStates, len(players))
	for i, p := range players {
		if seen[p.Name()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name())
		}
		seen[p.Name()] = true
		g.players[i] = &playerState{Player: p}
	}
	if err := g.setup(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) setup() error {
	g.deck = card.NewDeck(g.seed)
	g.board = board.NewBoard()
	// seating uses its own stream so it doesn't shift the deal.
	seat := g.seed
	seat[0] ^= 0xff
	rng := frand.NewCustom(seat[:], 32, 12)
	rng.Shuffle(len(g.players), func(i, j int) {
		g.players[i], g.players[j] = g.players[j], g.players[i]
	})
	g.players.resetScore()

	for _, p := range g.players {
		hand, err := g.deck.DealN(HandSize)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTooManyPlayers, err)
		}
		p.hand = hand
	}
	first, err := g.deck.Deal()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTooManyPlayers, err)
	}
	if err := g.board.Place(board.NewPlacedCard(first, board.NoOwner, 0, 0)); err != nil {
		return err
	}
	g.playing = Playing
	g.onturn = 0
	g.turnnum = 0
	g.passCounter = 0
	g.drawCounter = 0
	g.history = nil
	log.Debug().Str("game", g.id).Str("start", first.String()).
		Int("players", len(g.players)).Msg("game set up")
	return nil
}

// Step asks the player on turn for a move and applies it. It returns
// ErrGameOver if the game had already ended.
func (g *Game) Step() error {
	if g.playing == GameOver {
		return ErrGameOver
	}
	p := g.players[g.onturn]
	p.turns++
	g.turnnum++
	v := View{g: g, self: p}

	ms := p.MakeMove(v)
	if ms.IsEmpty() {
		g.discardStep(p, v)
	} else {
		g.playStep(p, ms)
	}

	if g.drawCounter >= MaxDiscardTurns || g.passCounter >= MaxPassTurns {
		g.playing = GameOver
	}
	if g.playing == GameOver {
		log.Debug().Str("game", g.id).Int("turns", g.turnnum).
			Strs("winners", g.Winners()).Msg("game over")
	}
	g.onturn = (g.onturn + 1) % len(g.players)
	return nil
}

func (g *Game) discardStep(p *playerState, v View) {
	g.drawCounter++
	before := p.hand.Copy()
	discards := p.Discard(v)
	if !p.hand.Remove(discards) {
		g.passCounter++
		log.Warn().Str("player", p.Name()).Str("hand", p.hand.String()).
			Str("discard", card.Hand(discards).String()).
			Msg("some cards are not in the player's hand; failed to discard")
		g.history = append(g.history, move.NewPassMove(p.Name(), g.turnnum, before))
		return
	}
	g.deck.Return(discards)
	p.refill(g.deck)
	g.history = append(g.history, move.NewDiscardMove(p.Name(), g.turnnum, discards, before))
}

func (g *Game) playStep(p *playerState, proposed move.MoveSet) {
	before := p.hand.Copy()
	// Whatever owner the player wrote, the cards are theirs.
	ms := move.NewMoveSet()
	for _, pc := range proposed.Placements() {
		pc.Owner = p.Name()
		ms = ms.Append(pc)
	}

	if !g.oracle.IsLegal(ms, g.board) {
		g.passCounter++
		log.Warn().Str("player", p.Name()).Str("move", ms.ShortDescription()).
			Msg("tried to play an illegal move")
		g.history = append(g.history, move.NewPassMove(p.Name(), g.turnnum, before))
		return
	}
	if !p.hand.Remove(ms.Cards()) {
		g.passCounter++
		log.Warn().Str("player", p.Name()).Str("hand", before.String()).
			Str("move", ms.ShortDescription()).
			Msg("some cards are not in the player's hand; failed to play")
		g.history = append(g.history, move.NewPassMove(p.Name(), g.turnnum, before))
		return
	}

	score := g.oracle.Score(ms, g.board)
	if !g.deck.HasCard() && len(p.hand) == 0 {
		score *= GoingOutMultiplier
		g.playing = GameOver
	}
	p.points += score
	p.refill(g.deck)
	for _, pc := range ms.Placements() {
		// Legal moves never collide with the board.
		if err := g.board.Place(pc); err != nil {
			panic(err)
		}
	}
	g.passCounter = 0
	g.drawCounter = 0
	g.history = append(g.history, move.NewPlayMove(p.Name(), g.turnnum, ms, score, before))
}

// Play steps until the game is over.
func (g *Game) Play() {
	for g.playing != GameOver {
		g.Step()
	}
}

// Winners returns the names of every player with the top score, in seating
// order. More than one name means a draw.
func (g *Game) Winners() []string {
	best := -1
	for _, p := range g.players {
		if p.points > best {
			best = p.points
		}
	}
	var w []string
	for _, p := range g.players {
		if p.points == best {
			w = append(w, p.Name())
		}
	}
	return w
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Seed() [32]byte {
	return g.seed
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) IsOver() bool {
	return g.playing == GameOver
}

// Board returns a copy of the current board.
func (g *Game) Board() *board.Board {
	return g.board.Copy()
}

func (g *Game) Turn() int {
	return g.turnnum
}

// PlayerOnTurn returns the name of the player who moves next.
func (g *Game) PlayerOnTurn() string {
	return g.players[g.onturn].Name()
}

// PlayerNames returns the names in seating order.
func (g *Game) PlayerNames() []string {
	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name()
	}
	return names
}

// HandOf returns a copy of the named player's hand, or nil if there is no
// such player.
func (g *Game) HandOf(name string) card.Hand {
	p := g.players.byName(name)
	if p == nil {
		return nil
	}
	return p.hand.Copy()
}

// PointsFor returns the named player's score.
func (g *Game) PointsFor(name string) int {
	p := g.players.byName(name)
	if p == nil {
		return 0
	}
	return p.points
}

// ViewFor returns the view the named player would get on its turn.
func (g *Game) ViewFor(name string) (View, bool) {
	p := g.players.byName(name)
	if p == nil {
		return View{}, false
	}
	return View{g: g, self: p}, true
}

func (g *Game) DeckRemaining() int {
	return g.deck.Remaining()
}

// History returns every turn taken so far.
func (g *Game) History() []*move.Move {
	h := make([]*move.Move, len(g.history))
	copy(h, g.history)
	return h
}

// Counters returns the consecutive discard and pass counts.
func (g *Game) Counters() (draws, passes int) {
	return g.drawCounter, g.passCounter
}
