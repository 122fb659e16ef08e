package render

import (
	"fmt"

	"term-life/internal/core"
)

// Half-block glyphs used to pack two grid rows into one character row. The
// top grid row maps to the upper half of the character cell and the bottom
// row to the lower half.
const (
	GlyphBlank = ' '
	GlyphUpper = '▀'
	GlyphLower = '▄'
	GlyphFull  = '█'
)

// Surface is the abstract cell display the renderer draws onto. The terminal
// driver adapts its screen to this; the renderer itself never touches the
// display library.
type Surface interface {
	SetContent(x, y int, r rune)
	Size() (w, h int)
}

// Glyph maps one (top, bottom) cell pair to its display rune.
func Glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return GlyphFull
	case top:
		return GlyphUpper
	case bottom:
		return GlyphLower
	default:
		return GlyphBlank
	}
}

// Frame renders the grid into height/2 rows of width runes. The grid height
// must be even. The grid is only read, never mutated.
func Frame(g *core.Grid) [][]rune {
	requireEven(g)
	rows := make([][]rune, g.H/2)
	for y := 0; y < g.H; y += 2 {
		row := make([]rune, g.W)
		for x := 0; x < g.W; x++ {
			row[x] = Glyph(g.Get(x, y), g.Get(x, y+1))
		}
		rows[y/2] = row
	}
	return rows
}

// Blit draws the grid onto the surface starting at its origin, clipping to
// the surface size. Like Frame it requires an even grid height.
func Blit(dst Surface, g *core.Grid) {
	requireEven(g)
	maxW, maxH := dst.Size()
	for y := 0; y < g.H; y += 2 {
		if y/2 >= maxH {
			break
		}
		for x := 0; x < g.W && x < maxW; x++ {
			dst.SetContent(x, y/2, Glyph(g.Get(x, y), g.Get(x, y+1)))
		}
	}
}

func requireEven(g *core.Grid) {
	if g.H%2 != 0 {
		panic(fmt.Sprintf("render: grid height %d must be even", g.H))
	}
}
