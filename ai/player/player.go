// Package player has computer players of iota, from a naive first-fit
// player up to one that searches every move-set the enumerator finds.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/game"
	"github.com/iotagame/iota/move"
	"github.com/iotagame/iota/movegen"
	"github.com/iotagame/iota/rules"
)

var ErrUnknownPlayer = errors.New("unknown player kind")

// searchBox returns the board's bounding box grown by one on every side.
// An empty board gives the single cell at the origin.
func searchBox(b *board.Board) (board.Position, board.Position) {
	lower, upper, ok := b.Bounds()
	if !ok {
		return board.Position{}, board.Position{}
	}
	return lower.Add(-1, -1), upper.Add(1, 1)
}

// FirstLegal plays the first legal single card it finds, scanning its hand
// and then the board from the top-left corner. It throws in its whole hand
// when nothing fits.
type FirstLegal struct {
	name   string
	oracle rules.LegalityOracle
}

func NewFirstLegal(name string, oracle rules.LegalityOracle) *FirstLegal {
	return &FirstLegal{name: name, oracle: oracle}
}

func (p *FirstLegal) Name() string { return p.name }

func (p *FirstLegal) MakeMove(v game.View) move.MoveSet {
	b := v.Board()
	topLeft, bottomRight := searchBox(b)
	for _, c := range v.Hand() {
		for x := topLeft.X; x <= bottomRight.X; x++ {
			for y := topLeft.Y; y <= bottomRight.Y; y++ {
				ms := move.NewMoveSet(board.NewPlacedCard(c, p.name, x, y))
				if p.oracle.IsLegal(ms, b) {
					return ms
				}
			}
		}
	}
	return move.MoveSet{}
}

func (p *FirstLegal) Discard(v game.View) []card.Card {
	return v.Hand()
}

// BestSingle plays the highest-scoring single card. Given no scoring
// placement it discards its hand in a random order.
type BestSingle struct {
	name   string
	scorer rules.Scorer
	rng    *frand.RNG
}

func NewBestSingle(name string, scorer rules.Scorer, seed [32]byte) *BestSingle {
	return &BestSingle{name: name, scorer: scorer, rng: frand.NewCustom(seed[:], 64, 12)}
}

func (p *BestSingle) Name() string { return p.name }

func (p *BestSingle) MakeMove(v game.View) move.MoveSet {
	b := v.Board()
	topLeft, bottomRight := searchBox(b)
	best := move.MoveSet{}
	bestScore := 0
	for _, c := range v.Hand() {
		for x := bottomRight.X; x >= topLeft.X; x-- {
			for y := bottomRight.Y; y >= topLeft.Y; y-- {
				ms := move.NewMoveSet(board.NewPlacedCard(c, p.name, x, y))
				if s := p.scorer.Score(ms, b); s > bestScore {
					best, bestScore = ms, s
				}
			}
		}
	}
	return best
}

func (p *BestSingle) Discard(v game.View) []card.Card {
	h := v.Hand()
	p.rng.Shuffle(len(h), func(i, j int) { h[i], h[j] = h[j], h[i] })
	return h
}

// Exhaustive asks the move enumerator for every legal move-set and plays
// the best scoring one. It also scores each pair of enumerated move-sets
// played one after the other, which finds the lines that extend a seed in
// two directions at once.
type Exhaustive struct {
	name   string
	gen    *movegen.Enumerator
	scorer rules.Scorer
}

func NewExhaustive(name string, oracle rules.Oracle, mode movegen.ContinuationMode) *Exhaustive {
	return &Exhaustive{
		name:   name,
		gen:    movegen.NewEnumerator(oracle, movegen.WithContinuation(mode)),
		scorer: oracle,
	}
}

func (p *Exhaustive) Name() string { return p.name }

// Candidates returns everything the player considers, scored. Combined
// move-sets the scorer rejects are left out.
func (p *Exhaustive) Candidates(v game.View) ([]movegen.ScoredMoveSet, error) {
	b := v.Board()
	res, err := p.gen.Enumerate(b, v.Hand(), p.name)
	if err != nil {
		return nil, err
	}
	cands := res.Ranked(p.scorer, b)
	sets := res.MoveSets()
	for _, one := range sets {
		for _, two := range sets {
			combined := one.Concat(two)
			if res.Contains(combined) {
				continue
			}
			if s := p.scorer.Score(combined, b); s != rules.IllegalScore {
				cands = append(cands, movegen.ScoredMoveSet{MoveSet: combined, Score: s})
			}
		}
	}
	return cands, nil
}

func (p *Exhaustive) MakeMove(v game.View) move.MoveSet {
	cands, err := p.Candidates(v)
	if err != nil {
		log.Err(err).Str("player", p.name).Msg("could not generate moves")
		return move.MoveSet{}
	}
	if len(cands) == 0 {
		log.Debug().Str("player", p.name).Msg("hand discarded")
		return move.MoveSet{}
	}
	// MaxBy keeps the first of equal scores, so ranked order breaks ties.
	best := lo.MaxBy(cands, func(a, b movegen.ScoredMoveSet) bool {
		return a.Score > b.Score
	})
	return best.MoveSet
}

func (p *Exhaustive) Discard(v game.View) []card.Card {
	return v.Hand()
}

// Kinds lists the player kinds ByName knows, by their short names.
var Kinds = []string{"first-legal", "best-single", "exhaustive"}

// ByName builds a player of the given kind. The kind may also be given by
// the name of the classic bot that plays that way (dave, derrick, falvey).
func ByName(kind, name string, oracle rules.Oracle, mode movegen.ContinuationMode,
	seed [32]byte) (game.Player, error) {

	switch strings.ToLower(kind) {
	case "first-legal", "dave":
		return NewFirstLegal(name, oracle), nil
	case "best-single", "derrick":
		return NewBestSingle(name, oracle, seed), nil
	case "exhaustive", "falvey":
		return NewExhaustive(name, oracle, mode), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, kind)
}

// ParseSpec reads a "kind[:name]" player description. Without a name the
// kind is used as the name.
func ParseSpec(spec string) (kind, name string) {
	kind, name, found := strings.Cut(spec, ":")
	if !found || name == "" {
		name = kind
	}
	return kind, name
}
