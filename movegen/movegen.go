// Package movegen enumerates every legal move-set a hand can make on a
// board. It seeds single placements next to the cards already on the
// board, then extends each legal seed outward one card at a time, asking
// the legality oracle about every intermediate state.
package movegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/card"
	"github.com/iotagame/iota/move"
	"github.com/iotagame/iota/rules"
)

// MoveGenerator is the interface players use to get candidate moves.
type MoveGenerator interface {
	Enumerate(b *board.Board, hand card.Hand, player string) (*MoveCollection, error)
}

// ContinuationMode controls which way an extension goes after its first
// step away from the seed.
type ContinuationMode uint8

const (
	// ContinueStraight keeps every branch on the direction it started in.
	ContinueStraight ContinuationMode = iota
	// ContinueNorthAfterFirst takes the first two extension steps in the
	// starting direction and every later step north. This matches the
	// stepping rule of the original engine and is kept for comparison.
	ContinueNorthAfterFirst
)

var ErrUnknownContinuation = errors.New("unknown continuation mode")

func (m ContinuationMode) String() string {
	switch m {
	case ContinueStraight:
		return "straight"
	case ContinueNorthAfterFirst:
		return "north"
	}
	return "unknown"
}

// ParseContinuationMode parses the names returned by String.
func ParseContinuationMode(s string) (ContinuationMode, error) {
	switch strings.ToLower(s) {
	case "", "straight":
		return ContinueStraight, nil
	case "north":
		return ContinueNorthAfterFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownContinuation, s)
}

// after is the stepping direction used for the placement following one
// made by stepping in d.
func (m ContinuationMode) after(d Direction) Direction {
	if m == ContinueNorthAfterFirst {
		return North
	}
	return d
}

// Option configures an Enumerator.
type Option func(*Enumerator)

func WithContinuation(m ContinuationMode) Option {
	return func(e *Enumerator) {
		e.mode = m
	}
}

// Enumerator is the move-set search engine. It holds no per-call state and
// may be shared.
type Enumerator struct {
	oracle rules.LegalityOracle
	mode   ContinuationMode
}

// NewEnumerator creates an enumerator that checks every candidate with
// oracle.
func NewEnumerator(oracle rules.LegalityOracle, opts ...Option) *Enumerator {
	e := &Enumerator{oracle: oracle}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Enumerator) Mode() ContinuationMode {
	return e.mode
}

// search is the state of one Enumerate call.
type search struct {
	oracle rules.LegalityOracle
	mode   ContinuationMode
	grid   *Grid
	board  *board.Board
	player string

	results     *MoveCollection
	oracleCalls int
}

// Enumerate returns every distinct legal move-set player can make with
// hand on b, including every legal prefix of a longer one.
//
// b and hand are copied on entry and never modified. An empty board or an
// empty hand gives an empty collection. A board card on or beyond the
// grid's border ring is an error (ErrOutOfWindow). Panics raised by the
// oracle are not recovered.
func (e *Enumerator) Enumerate(b *board.Board, hand card.Hand, player string) (*MoveCollection, error) {
	snapshot := b.Copy()
	h := hand.Copy()

	g, err := NewGrid(snapshot)
	if err != nil {
		return nil, err
	}
	s := &search{
		oracle:  e.oracle,
		mode:    e.mode,
		grid:    g,
		board:   snapshot,
		player:  player,
		results: NewMoveCollection(),
	}
	if snapshot.IsEmpty() || len(h) == 0 {
		return s.results, nil
	}

	seeds := 0
	for _, pc := range snapshot.Cards() {
		idx, _ := g.IndexOf(pc.Pos)
		for _, nidx := range g.NeighborsOf(idx) {
			if !g.Interior(nidx) {
				continue
			}
			target := g.Cell(nidx).Pos()
			for i, c := range h {
				ms := move.NewMoveSet(board.PlacedCard{Card: c, Owner: player, Pos: target})
				if !s.legal(ms) {
					continue
				}
				seeds++
				s.results.Add(ms)
				s.extendAll(nidx, h.Without(i), ms)
			}
		}
	}

	log.Debug().
		Str("player", player).
		Int("board-cards", snapshot.NumCards()).
		Int("hand", len(h)).
		Int("seeds", seeds).
		Int("oracle-calls", s.oracleCalls).
		Int("recorded", s.results.Len()).
		Int("duplicates", s.results.Duplicates()).
		Str("continuation", e.mode.String()).
		Msg("enumerated move-sets")
	return s.results, nil
}

func (s *search) legal(ms move.MoveSet) bool {
	s.oracleCalls++
	return s.oracle.IsLegal(ms, s.board)
}

// extendAll tries to grow ms in each of the four directions from the seed
// cell at from.
func (s *search) extendAll(from int, hand card.Hand, ms move.MoveSet) {
	if len(hand) == 0 {
		return
	}
	for d := Direction(0); d < NumDirections; d++ {
		s.extend(s.grid.Step(from, d), d, hand, ms)
	}
}

// extend tries every remaining card at target. Each legal attempt is
// recorded, then extended from target by stepping in next.
func (s *search) extend(target int, next Direction, hand card.Hand, ms move.MoveSet) {
	if target == noCell || !s.grid.Interior(target) {
		return
	}
	pos := s.grid.Cell(target).Pos()
	for i, c := range hand {
		candidate := ms.Append(board.PlacedCard{Card: c, Owner: s.player, Pos: pos})
		if !s.legal(candidate) {
			continue
		}
		s.results.Add(candidate)
		rest := hand.Without(i)
		if len(rest) == 0 {
			continue
		}
		s.extend(s.grid.Step(target, next), s.mode.after(next), rest, candidate)
	}
}
