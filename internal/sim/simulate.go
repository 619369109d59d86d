package sim

import (
	"fmt"

	"github.com/vovakirdan/digsim/internal/pattern"
)

// neighbour is a relative offset and the state it receives from a dig.
type neighbour struct {
	dRow, dCol int
	state      CellState
}

// digNeighbours lists the eight cells touched by a dig.
var digNeighbours = [8]neighbour{
	{-1, 0, Revealed}, // up
	{1, 0, Revealed},  // down
	{0, -1, Revealed}, // left
	{0, 1, Revealed},  // right
	{-1, -1, Partial}, // up left
	{-1, 1, Partial},  // up right
	{1, -1, Partial},  // down left
	{1, 1, Partial},   // down right
}

// Simulate walks the padded window of cfg in row-major order, digging every
// cell the pattern marks and propagating reveals to its neighbours.
// The returned grid is the full window, padding included.
func Simulate(p pattern.Pattern, cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("%w: pattern is not initialised", pattern.ErrInvalidPattern)
	}

	size := cfg.Window()
	g := NewGrid(size, size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if p.KindAt(row, col) == pattern.KindDig {
				dig(g, row, col)
			}
		}
	}
	return g, nil
}

// dig marks (row, col) as Dug and reveals its neighbours.
func dig(g *Grid, row, col int) {
	g.Apply(row, col, Dug)
	for _, n := range digNeighbours {
		g.Apply(row+n.dRow, col+n.dCol, n.state)
	}
}

// Totals holds per-state cell counts over a grid.
type Totals struct {
	Total      int
	Dug        int
	Revealed   int
	Unrevealed int
	Partial    int
}

// Count tallies the states of every cell in g.
func Count(g *Grid) Totals {
	var t Totals
	for _, c := range g.Cells {
		switch c {
		case Dug:
			t.Dug++
		case Revealed:
			t.Revealed++
		case Partial:
			t.Partial++
		default:
			t.Unrevealed++
		}
		t.Total++
	}
	return t
}
