package movegen

import (
	"sort"

	"github.com/samber/lo"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/move"
	"github.com/iotagame/iota/rules"
)

// MoveCollection is the deduplicated result of an enumeration. Entries are
// keyed by move.MoveSet.Key, so the same placements in a different order
// are different entries. Insertion order is kept.
type MoveCollection struct {
	index map[string]int
	sets  []move.MoveSet
	dupes int
}

func NewMoveCollection() *MoveCollection {
	return &MoveCollection{index: make(map[string]int)}
}

// Add records ms. It returns false if an identical entry was already there.
func (c *MoveCollection) Add(ms move.MoveSet) bool {
	k := ms.Key()
	if _, ok := c.index[k]; ok {
		c.dupes++
		return false
	}
	c.index[k] = len(c.sets)
	c.sets = append(c.sets, ms)
	return true
}

func (c *MoveCollection) Contains(ms move.MoveSet) bool {
	return c.ContainsKey(ms.Key())
}

func (c *MoveCollection) ContainsKey(k string) bool {
	_, ok := c.index[k]
	return ok
}

func (c *MoveCollection) Len() int {
	return len(c.sets)
}

// Duplicates returns how many Add calls were rejected as repeats.
func (c *MoveCollection) Duplicates() int {
	return c.dupes
}

// MoveSets returns the entries in the order they were first recorded.
func (c *MoveCollection) MoveSets() []move.MoveSet {
	ret := make([]move.MoveSet, len(c.sets))
	copy(ret, c.sets)
	return ret
}

// Keys returns the canonical key of every entry, in insertion order.
func (c *MoveCollection) Keys() []string {
	return lo.Map(c.sets, func(ms move.MoveSet, _ int) string {
		return ms.Key()
	})
}

// WithLength returns the entries placing exactly n cards.
func (c *MoveCollection) WithLength(n int) []move.MoveSet {
	return lo.Filter(c.sets, func(ms move.MoveSet, _ int) bool {
		return ms.Len() == n
	})
}

// ScoredMoveSet pairs a move-set with its score.
type ScoredMoveSet struct {
	MoveSet move.MoveSet
	Score   int
}

// Ranked scores every entry and returns them best first. Ties keep
// insertion order, so the ranking is deterministic.
func (c *MoveCollection) Ranked(s rules.Scorer, b *board.Board) []ScoredMoveSet {
	ranked := lo.Map(c.sets, func(ms move.MoveSet, _ int) ScoredMoveSet {
		return ScoredMoveSet{MoveSet: ms, Score: s.Score(ms, b)}
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
