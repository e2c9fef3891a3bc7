// Package automatic plays computer-vs-computer games of iota, one at a
// time or many at once, and collects the results.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iotagame/iota/ai/player"
	"github.com/iotagame/iota/game"
	"github.com/iotagame/iota/movegen"
	"github.com/iotagame/iota/rules"
)

// TurnLogHeader is the first line of a turn log.
var TurnLogHeader = []string{"playerID", "gameID", "turn", "hand", "play",
	"score", "totalscore", "cardsplayed", "deckremaining"}

// GameRunner plays single games between a fixed line-up of players.
type GameRunner struct {
	specs  []string
	oracle rules.Oracle
	mode   movegen.ContinuationMode
	// logchan receives one turn-log record per turn when not nil.
	logchan chan []string

	game *game.Game
}

// NewGameRunner creates a runner for the given players, each described as
// "kind[:name]".
func NewGameRunner(logchan chan []string, specs []string, oracle rules.Oracle,
	mode movegen.ContinuationMode) *GameRunner {

	return &GameRunner{specs: specs, oracle: oracle, mode: mode, logchan: logchan}
}

// GameResult is the outcome of one game.
type GameResult struct {
	ID      string
	Seed    [32]byte
	Turns   int
	Scores  map[string]int
	Winners []string
	// First is the player who moved first.
	First string
}

// Init sets up a fresh game from seed.
func (r *GameRunner) Init(seed [32]byte) error {
	players := make([]game.Player, len(r.specs))
	for i, spec := range r.specs {
		kind, name := player.ParseSpec(spec)
		// each player gets its own stream for shuffling
		pseed := seed
		pseed[31] ^= byte(i + 1)
		p, err := player.ByName(kind, name, r.oracle, r.mode, pseed)
		if err != nil {
			return err
		}
		players[i] = p
	}
	g, err := game.NewGame(players, game.WithSeed(seed), game.WithRules(r.oracle))
	if err != nil {
		return err
	}
	r.game = g
	return nil
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayTurn plays one turn and logs it.
func (r *GameRunner) PlayTurn() error {
	name := r.game.PlayerOnTurn()
	hand := r.game.HandOf(name)
	if err := r.game.Step(); err != nil {
		return err
	}
	if r.logchan == nil {
		return nil
	}
	h := r.game.History()
	last := h[len(h)-1]
	r.logchan <- []string{
		name,
		r.game.ID(),
		fmt.Sprint(r.game.Turn()),
		hand.String(),
		last.ShortDescription(),
		fmt.Sprint(last.Score()),
		fmt.Sprint(r.game.PointsFor(name)),
		fmt.Sprint(last.MoveSet().Len()),
		fmt.Sprint(r.game.DeckRemaining()),
	}
	return nil
}

// PlayGame plays a whole game from seed and returns the result. It stops
// early, with the context's error, if ctx is cancelled.
func (r *GameRunner) PlayGame(ctx context.Context, seed [32]byte) (*GameResult, error) {
	if err := r.Init(seed); err != nil {
		return nil, err
	}
	first := r.game.PlayerOnTurn()
	for !r.game.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.PlayTurn(); err != nil {
			return nil, err
		}
	}
	res := &GameResult{
		ID:      r.game.ID(),
		Seed:    seed,
		Turns:   r.game.Turn(),
		Scores:  map[string]int{},
		Winners: r.game.Winners(),
		First:   first,
	}
	for _, n := range r.game.PlayerNames() {
		res.Scores[n] = r.game.PointsFor(n)
	}
	log.Debug().Str("game", res.ID).Int("turns", res.Turns).
		Interface("scores", res.Scores).Msg("game over")
	return res, nil
}
