package life

import (
	"math"
	"testing"

	"term-life/internal/core"
)

func assertBoard(t *testing.T, l *Life, expects map[[2]int]bool) {
	t.Helper()
	g := l.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Get(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(6, 6)
	set := func(x, y int) { l.Grid().Set(x, y, true) }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	l.Step()
	assertBoard(t, l, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	l.Step()
	assertBoard(t, l, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockStillLife(t *testing.T) {
	l := New(6, 6)
	block := map[[2]int]bool{
		{2, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{3, 3}: true,
	}
	for pos := range block {
		l.Grid().Set(pos[0], pos[1], true)
	}

	for i := 0; i < 3; i++ {
		l.Step()
		assertBoard(t, l, block)
	}
}

func TestLoneCornerCellDies(t *testing.T) {
	l := New(4, 4)
	l.Grid().Set(0, 0, true)

	l.Step()
	assertBoard(t, l, nil)
}

func TestNoWraparound(t *testing.T) {
	// A vertical blinker hugging the left edge. With toroidal wrapping the
	// horizontal phase would wrap to the far column; with hard edges it must
	// stay at columns 0 and 1 only.
	l := New(5, 4)
	l.Grid().Set(0, 0, true)
	l.Grid().Set(0, 1, true)
	l.Grid().Set(0, 2, true)

	l.Step()
	assertBoard(t, l, map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
	})
}

func TestAdvanceIsDeterministic(t *testing.T) {
	in := core.NewGrid(8, 8)
	rng := core.NewRNG(99).Source()
	core.FillBernoulli(rng, in.Cells(), 2)

	first := core.NewGrid(8, 8)
	nextGeneration(in, first)

	for i := 0; i < 5; i++ {
		out := core.NewGrid(8, 8)
		nextGeneration(in, out)
		for j, v := range out.Cells() {
			if v != first.Cells()[j] {
				t.Fatalf("run %d diverged at index %d", i, j)
			}
		}
	}
}

func TestSimultaneousUpdate(t *testing.T) {
	// A naive in-place scan kills (1,0) before its neighbors are counted,
	// which would leave (0,1) and (1,1) with too few neighbors and wipe the
	// board. The buffered rule must produce the vertical blinker phase.
	l := New(4, 4)
	l.Grid().Set(0, 1, true)
	l.Grid().Set(1, 1, true)
	l.Grid().Set(2, 1, true)

	l.Step()
	assertBoard(t, l, map[[2]int]bool{
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
	})
}

func TestSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched grid sizes")
		}
	}()
	nextGeneration(core.NewGrid(4, 4), core.NewGrid(4, 6))
}

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"odd height", 10, 5},
		{"zero width", 0, 4},
		{"negative height", 10, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d, %d) should panic", tc.w, tc.h)
				}
			}()
			New(tc.w, tc.h)
		})
	}
}

func TestResetSeedDensity(t *testing.T) {
	// 100k cells at p = 1/3. Three standard deviations of a binomial with
	// these parameters is under 450 cells, so a 1000-cell band is generous.
	const cells = 100_000
	const tolerance = 1000

	for _, seed := range []int64{1, 42, 1337} {
		l := New(500, 200)
		l.Reset(seed)

		alive := 0
		for _, v := range l.Grid().Cells() {
			if v {
				alive++
			}
		}
		expected := float64(cells) / float64(DefaultDensity)
		if math.Abs(float64(alive)-expected) > tolerance {
			t.Fatalf("seed %d: %d alive cells, expected about %.0f", seed, alive, expected)
		}
	}
}

func TestResetRestartsGenerationCount(t *testing.T) {
	l := New(8, 8)
	l.Reset(7)
	l.Step()
	l.Step()
	if l.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", l.Generation())
	}
	l.Reset(8)
	if l.Generation() != 0 {
		t.Fatalf("generation after reset = %d, expected 0", l.Generation())
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "32", "h": "64", "density": "5"})
	if c.Width != 32 || c.Height != 64 || c.Density != 5 {
		t.Fatalf("unexpected config %+v", c)
	}

	// Odd heights and garbage values fall back to defaults.
	c = FromMap(map[string]string{"h": "33", "density": "zero"})
	d := DefaultConfig()
	if c.Height != d.Height || c.Density != d.Density {
		t.Fatalf("unexpected fallback config %+v", c)
	}
}
