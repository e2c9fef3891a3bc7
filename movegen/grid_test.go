package movegen

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/iotagame/iota/board"
	"github.com/iotagame/iota/testhelpers"
)

func TestGridIndexing(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(board.NewBoard())
	is.NoErr(err)

	idx, ok := g.IndexOf(board.Position{X: 0, Y: 0})
	is.True(ok)
	is.Equal(idx, Radius*Dim+Radius)
	is.Equal(g.Cell(idx).Pos(), board.Position{X: 0, Y: 0})

	corner, ok := g.IndexOf(board.Position{X: -Radius, Y: -Radius})
	is.True(ok)
	is.Equal(corner, 0)

	_, ok = g.IndexOf(board.Position{X: Radius + 1, Y: 0})
	is.True(!ok)
}

func TestGridNeighbours(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(testhelpers.MustBoard("RC1@0,0 RC2@1,0"))
	is.NoErr(err)

	origin, _ := g.IndexOf(board.Position{X: 0, Y: 0})
	is.True(!g.IsEmpty(origin))
	pc, ok := g.Cell(origin).Card()
	is.True(ok)
	is.Equal(pc.Card.String(), "RC1")

	// east is occupied, so only north, south and west come back, in
	// that order.
	nbrs := g.NeighborsOf(origin)
	is.Equal(len(nbrs), 3)
	is.Equal(g.Cell(nbrs[0]).Pos(), board.Position{X: 0, Y: -1})
	is.Equal(g.Cell(nbrs[1]).Pos(), board.Position{X: 0, Y: 1})
	is.Equal(g.Cell(nbrs[2]).Pos(), board.Position{X: -1, Y: 0})

	east := g.Step(origin, East)
	is.Equal(g.Cell(east).Pos(), board.Position{X: 1, Y: 0})
	is.Equal(g.Cell(g.Step(origin, North)).Pos(), board.Position{X: 0, Y: -1})
	is.Equal(g.Cell(g.Step(origin, West)).Pos(), board.Position{X: -1, Y: 0})
	is.Equal(g.Cell(g.Step(origin, South)).Pos(), board.Position{X: 0, Y: 1})
}

func TestBorderRingHasNoNeighbours(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(board.NewBoard())
	is.NoErr(err)

	for _, p := range []board.Position{
		{X: Radius, Y: 0}, {X: -Radius, Y: 5}, {X: 3, Y: Radius}, {X: -Radius, Y: -Radius},
	} {
		idx, ok := g.IndexOf(p)
		is.True(ok)
		is.True(!g.Interior(idx))
		is.Equal(len(g.NeighborsOf(idx)), 0)
		for d := Direction(0); d < NumDirections; d++ {
			is.Equal(g.Step(idx, d), noCell)
		}
	}

	// The last interior cell links out to the ring.
	idx, _ := g.IndexOf(board.Position{X: Radius - 1, Y: 0})
	is.True(g.Interior(idx))
	ring := g.Step(idx, East)
	is.True(ring != noCell)
	is.True(!g.Interior(ring))
}

func TestGridRejectsBorderCards(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{
		"RC1@0,0 RC2@32,0",
		"RC1@-32,4",
		"RC1@0,32",
		"RC1@0,-32",
		"RC1@100,100",
	} {
		_, err := NewGrid(testhelpers.MustBoard(s))
		is.True(errors.Is(err, ErrOutOfWindow))
	}

	_, err := NewGrid(testhelpers.MustBoard("RC1@31,-31 RC2@-31,31"))
	is.NoErr(err)
}

func TestDirectionString(t *testing.T) {
	is := is.New(t)
	is.Equal(North.String(), "north")
	is.Equal(West.String(), "west")
	is.Equal(Direction(9).String(), "none")
}
