// Package rules holds the legality and scoring oracles. The move generator
// and the game only ever see them through the interfaces below; Standard
// is the rule set the game is normally played with.
package rules

import (
	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/move"
)

// IllegalScore is what a Scorer returns for a move-set that is not legal.
const IllegalScore = -1

// LegalityOracle decides whether a candidate move-set may be played on a
// board. Implementations must be pure functions of their arguments.
type LegalityOracle interface {
	IsLegal(ms move.MoveSet, b *board.Board) bool
}

// Scorer computes the points a move-set earns on a board.
type Scorer interface {
	Score(ms move.MoveSet, b *board.Board) int
}

// Oracle is a complete rule set.
type Oracle interface {
	LegalityOracle
	Scorer
}

// LegalityFunc adapts a plain function to LegalityOracle.
type LegalityFunc func(ms move.MoveSet, b *board.Board) bool

func (f LegalityFunc) IsLegal(ms move.MoveSet, b *board.Board) bool {
	return f(ms, b)
}

// ScoreFunc adapts a plain function to Scorer.
type ScoreFunc func(ms move.MoveSet, b *board.Board) int

func (f ScoreFunc) Score(ms move.MoveSet, b *board.Board) int {
	return f(ms, b)
}

// Combine builds an Oracle out of separate legality and scoring functions.
func Combine(l LegalityOracle, s Scorer) Oracle {
	return combined{l, s}
}

type combined struct {
	LegalityOracle
	Scorer
}
