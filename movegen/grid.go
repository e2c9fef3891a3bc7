package movegen

import (
	"errors"
	"fmt"

	"github.com/iotagame/iota/board"
)

const (
	// Radius is the largest coordinate, in absolute value, the grid can
	// address. Cards may only sit strictly inside it; the outermost ring
	// (|x| == Radius or |y| == Radius) has no neighbour links.
	Radius = 32
	// Dim is the side of the addressable window.
	Dim = 2*Radius + 1

	noCell = -1
)

// ErrOutOfWindow is returned when a board card lies on or beyond the
// grid's border ring.
var ErrOutOfWindow = errors.New("card outside the addressable window")

// Direction is one of the four orthogonal directions.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West

	NumDirections = 4
)

var directionNames = [NumDirections]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if d >= NumDirections {
		return "none"
	}
	return directionNames[d]
}

// delta is the coordinate change of one step. North is towards negative y.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// A Cell is one addressable position of the grid.
type Cell struct {
	pos      board.Position
	card     board.PlacedCard
	occupied bool
	// indices of the neighbour cells; noCell when unassigned.
	nbrs [NumDirections]int
}

func (c *Cell) Pos() board.Position { return c.pos }

// Card returns the card in this cell, if any.
func (c *Cell) Card() (board.PlacedCard, bool) {
	return c.card, c.occupied
}

func (c *Cell) IsEmpty() bool {
	return !c.occupied
}

// A Grid is a dense Dim x Dim arena of cells built from one board snapshot.
// Cells are addressed by integer index and refer to their neighbours by
// index as well.
type Grid struct {
	cells []Cell
}

// InInterior returns true if p may hold a card: both coordinates strictly
// inside the border ring.
func InInterior(p board.Position) bool {
	return abs(p.X) < Radius && abs(p.Y) < Radius
}

func inWindow(p board.Position) bool {
	return abs(p.X) <= Radius && abs(p.Y) <= Radius
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func indexOf(p board.Position) int {
	return (Radius+p.Y)*Dim + (Radius + p.X)
}

// NewGrid materializes a board. It fails with ErrOutOfWindow if any card
// sits on or outside the border ring.
func NewGrid(b *board.Board) (*Grid, error) {
	g := &Grid{cells: make([]Cell, Dim*Dim)}
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			c := &g.cells[row*Dim+col]
			c.pos = board.Position{X: col - Radius, Y: row - Radius}
			for d := range c.nbrs {
				c.nbrs[d] = noCell
			}
		}
	}

	for _, pc := range b.Cards() {
		if !InInterior(pc.Pos) {
			return nil, fmt.Errorf("%w: %v at %v (limit %d)", ErrOutOfWindow,
				pc.Card, pc.Pos, Radius-1)
		}
		c := &g.cells[indexOf(pc.Pos)]
		c.card = pc
		c.occupied = true
	}

	for row := 1; row < Dim-1; row++ {
		for col := 1; col < Dim-1; col++ {
			idx := row*Dim + col
			c := &g.cells[idx]
			c.nbrs[North] = idx - Dim
			c.nbrs[South] = idx + Dim
			c.nbrs[East] = idx + 1
			c.nbrs[West] = idx - 1
		}
	}
	return g, nil
}

// IndexOf returns the index of the cell at p; ok is false if p is outside
// the window.
func (g *Grid) IndexOf(p board.Position) (int, bool) {
	if !inWindow(p) {
		return noCell, false
	}
	return indexOf(p), true
}

// Cell returns the cell at idx.
func (g *Grid) Cell(idx int) *Cell {
	return &g.cells[idx]
}

func (g *Grid) IsEmpty(idx int) bool {
	return g.cells[idx].IsEmpty()
}

// Interior returns true if the cell is not on the border ring.
func (g *Grid) Interior(idx int) bool {
	return InInterior(g.cells[idx].pos)
}

// Step returns the index of the neighbour of idx in direction d, or -1 if
// that link is not assigned.
func (g *Grid) Step(idx int, d Direction) int {
	if idx == noCell {
		return noCell
	}
	return g.cells[idx].nbrs[d]
}

// NeighborsOf returns the empty neighbours of idx, in north, south, east,
// west order. Border cells have none.
func (g *Grid) NeighborsOf(idx int) []int {
	nbrs := make([]int, 0, NumDirections)
	for _, n := range g.cells[idx].nbrs {
		if n != noCell && g.cells[n].IsEmpty() {
			nbrs = append(nbrs, n)
		}
	}
	return nbrs
}
