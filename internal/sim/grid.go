package sim

// Grid is a dense rectangular array of cell states.
// Cells are stored in row-major order: index = row*W + col.
type Grid struct {
	W     int         // Number of columns
	H     int         // Number of rows
	Cells []CellState // Flat array of cells, length W*H
}

// NewGrid creates a grid with every cell Unrevealed.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]CellState, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.W + col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get returns the state at the given coordinate.
// Returns Unrevealed if out of bounds.
func (g *Grid) Get(row, col int) CellState {
	if !g.InBounds(row, col) {
		return Unrevealed
	}
	return g.Cells[g.index(row, col)]
}

// Set overwrites the state at the given coordinate unconditionally.
// Out-of-bounds writes are dropped.
func (g *Grid) Set(row, col int, s CellState) {
	if g.InBounds(row, col) {
		g.Cells[g.index(row, col)] = s
	}
}

// Apply writes s only if the current state accepts it per CanTransition.
// Returns true if the cell changed. Out-of-bounds writes are dropped.
func (g *Grid) Apply(row, col int, s CellState) bool {
	if !g.InBounds(row, col) {
		return false
	}
	i := g.index(row, col)
	if g.Cells[i] == s || !CanTransition(g.Cells[i], s) {
		return false
	}
	g.Cells[i] = s
	return true
}

// Trim returns a new grid with a border of the given width removed from
// all four sides. A border that consumes the whole grid yields an empty grid.
// A negative border is treated as zero.
func (g *Grid) Trim(border int) *Grid {
	if border < 0 {
		border = 0
	}
	w := g.W - 2*border
	h := g.H - 2*border
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	out := NewGrid(w, h)
	for row := 0; row < h; row++ {
		src := g.index(row+border, border)
		copy(out.Cells[row*w:(row+1)*w], g.Cells[src:src+w])
	}
	return out
}

// Rows returns the grid as a slice of rows in row/column order.
// The returned slices are copies.
func (g *Grid) Rows() [][]CellState {
	rows := make([][]CellState, g.H)
	for row := 0; row < g.H; row++ {
		rows[row] = make([]CellState, g.W)
		copy(rows[row], g.Cells[row*g.W:(row+1)*g.W])
	}
	return rows
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s CellState) int {
	count := 0
	for _, c := range g.Cells {
		if c == s {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
