package life

import (
	"fmt"
	"strconv"

	"term-life/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid with hard edges.
// The next generation is computed into a back buffer so every birth and death
// within a tick is simultaneous.
type Life struct {
	buf     *core.DoubleBuffer
	density int
	gen     int
}

// New returns a Life simulation with the provided dimensions using the
// default seed density. Width must be positive and height a positive even
// number, since the renderer packs two grid rows into one output row.
func New(w, h int) *Life {
	return NewWithDensity(w, h, DefaultDensity)
}

// NewWithDensity is New with an explicit 1-in-density seeding probability.
func NewWithDensity(w, h, density int) *Life {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("life: invalid dimensions %dx%d", w, h))
	}
	if h%2 != 0 {
		panic(fmt.Sprintf("life: height %d must be even", h))
	}
	if density < 1 {
		density = 1
	}
	return &Life{buf: core.NewDoubleBuffer(w, h), density: density}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	g := l.buf.Front()
	return core.Size{W: g.W, H: g.H}
}

// Grid exposes the current generation for rendering. The returned grid is
// only valid until the next Step or Reset; callers must not retain it across
// a tick.
func (l *Life) Grid() *core.Grid { return l.buf.Front() }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset randomizes the board using the provided seed. Each cell is alive with
// probability 1 in the configured density.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBernoulli(rng, l.buf.Back().Cells(), l.density)
	l.buf.Swap()
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	nextGeneration(l.buf.Front(), l.buf.Back())
	l.buf.Swap()
	l.gen++
}

// Parameters exposes the seeding tunables for the status HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name:    "seeding",
				Summary: fmt.Sprintf("1 in %d alive", l.density),
				Params: []core.Parameter{
					{
						Key:         "density",
						Label:       "Density",
						Type:        core.ParamTypeInt,
						Value:       strconv.Itoa(l.density),
						Description: "denominator of the alive probability; lower means more alive cells",
					},
				},
			},
		},
	}
}

// nextGeneration writes the successor of in into out according to the rules
// of Conway's Game of Life. The rules are as follows, quoting Wikipedia:
//
//   - Any live cell with fewer than two live neighbors dies, as if by
//     underpopulation.
//   - Any live cell with two or three live neighbors lives on to the next
//     generation.
//   - Any live cell with more than three live neighbors dies, as if by
//     overpopulation.
//   - Any dead cell with exactly three live neighbors becomes a live cell,
//     as if by reproduction.
//
// Cells beyond the grid edge do not exist and are never counted; there is no
// wraparound. Only in is read, so the update is simultaneous across the grid.
func nextGeneration(in, out *core.Grid) {
	if in.W != out.W || in.H != out.H {
		panic(fmt.Sprintf("life: grid size mismatch %dx%d vs %dx%d", in.W, in.H, out.W, out.H))
	}

	w, h := in.W, in.H
	src := in.Cells()
	dst := out.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w || (dx == 0 && dy == 0) {
						continue
					}
					if src[ny*w+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			if src[idx] {
				dst[idx] = neighbors == 2 || neighbors == 3
			} else {
				dst[idx] = neighbors == 3
			}
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithDensity(c.Width, c.Height, c.Density)
	})
}
