// Package fire implements the heat-diffusion simulation behind the
// fireplace: a grid of 8-bit heat values, an engine that advances it one
// frame at a time, and a renderer that maps heat onto themed screen cells.
// The package contains pure logic with no terminal dependencies.
package fire

// MaxHeat is the hottest representable cell value.
const MaxHeat = 255

// Grid is the rectangular heat field. The bottom row (y = H-1) is the fuel
// source; heat propagates upward toward row 0. Cells are stored in
// row-major order: index = y*W + x.
type Grid struct {
	W     int     // Width of the grid
	H     int     // Height of the grid
	Cells []uint8 // Flat array of heat values, length W*H
}

// NewGrid creates a new grid with the given dimensions, all cells cold.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]uint8, w*h),
	}
}

// Reset adjusts the grid to the given dimensions. A resize discards all
// accumulated heat; matching dimensions leave the grid untouched so the
// flame survives frames where nothing changed.
func (g *Grid) Reset(w, h int) {
	if w == g.W && h == g.H {
		return
	}
	g.W = w
	g.H = h
	g.Cells = make([]uint8, w*h)
}

// At returns the heat at (x, y). Callers are trusted to stay in bounds.
func (g *Grid) At(x, y int) uint8 {
	return g.Cells[y*g.W+x]
}

// Set writes the heat at (x, y). Callers are trusted to stay in bounds.
func (g *Grid) Set(x, y int, heat uint8) {
	g.Cells[y*g.W+x] = heat
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, heat := range g.Cells {
		if heat != other.Cells[i] {
			return false
		}
	}
	return true
}
