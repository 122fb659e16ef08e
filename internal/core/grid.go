package core

import "fmt"

// Grid stores a 2D field of boolean cell states in row-major order. The
// dimensions are fixed at construction; a resize means building a new Grid.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a grid with the given dimensions. Both must be positive.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Get reports whether the cell at (x, y) is alive. Out-of-range coordinates
// indicate a caller bug and panic.
func (g *Grid) Get(x, y int) bool {
	g.check(x, y)
	return g.data[y*g.W+x]
}

// Set assigns the cell at (x, y). Out-of-range coordinates panic.
func (g *Grid) Set(x, y int, alive bool) {
	g.check(x, y)
	g.data[y*g.W+x] = alive
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
}
