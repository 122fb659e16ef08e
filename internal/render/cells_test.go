package render

import (
	"testing"

	"term-life/internal/core"
)

func TestGlyphMapping(t *testing.T) {
	cases := []struct {
		top, bottom bool
		want        rune
	}{
		{false, false, GlyphBlank},
		{true, false, GlyphUpper},
		{false, true, GlyphLower},
		{true, true, GlyphFull},
	}
	for _, tc := range cases {
		g := core.NewGrid(1, 2)
		g.Set(0, 0, tc.top)
		g.Set(0, 1, tc.bottom)

		rows := Frame(g)
		if len(rows) != 1 || len(rows[0]) != 1 {
			t.Fatalf("Frame produced %d rows, expected 1x1", len(rows))
		}
		if rows[0][0] != tc.want {
			t.Fatalf("top=%v bottom=%v: got %q, want %q", tc.top, tc.bottom, rows[0][0], tc.want)
		}
	}
}

func TestFramePacksRowPairs(t *testing.T) {
	g := core.NewGrid(3, 4)
	g.Set(0, 0, true) // upper in output row 0
	g.Set(1, 1, true) // lower in output row 0
	g.Set(2, 2, true)
	g.Set(2, 3, true) // full in output row 1

	rows := Frame(g)
	if len(rows) != 2 {
		t.Fatalf("got %d output rows, expected 2", len(rows))
	}
	want := [][]rune{
		{GlyphUpper, GlyphLower, GlyphBlank},
		{GlyphBlank, GlyphBlank, GlyphFull},
	}
	for y, row := range want {
		for x, r := range row {
			if rows[y][x] != r {
				t.Fatalf("output (%d,%d) = %q, want %q", x, y, rows[y][x], r)
			}
		}
	}
}

func TestFrameDoesNotMutateGrid(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(0, 0, true)
	g.Set(1, 1, true)
	before := append([]bool(nil), g.Cells()...)

	Frame(g)

	for i, v := range g.Cells() {
		if v != before[i] {
			t.Fatalf("cell %d changed from %v to %v", i, before[i], v)
		}
	}
}

func TestFrameOddHeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd grid height")
		}
	}()
	Frame(core.NewGrid(2, 3))
}

type fakeSurface struct {
	w, h  int
	cells map[[2]int]rune
}

func (s *fakeSurface) SetContent(x, y int, r rune) { s.cells[[2]int{x, y}] = r }
func (s *fakeSurface) Size() (int, int)            { return s.w, s.h }

func TestBlitClipsToSurface(t *testing.T) {
	g := core.NewGrid(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, true)
		}
	}

	dst := &fakeSurface{w: 2, h: 1, cells: map[[2]int]rune{}}
	Blit(dst, g)

	if len(dst.cells) != 2 {
		t.Fatalf("blit wrote %d cells, expected 2", len(dst.cells))
	}
	for pos, r := range dst.cells {
		if r != GlyphFull {
			t.Fatalf("cell %v = %q, want %q", pos, r, GlyphFull)
		}
	}
}
