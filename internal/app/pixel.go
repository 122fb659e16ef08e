//go:build ebiten

package app

import (
	"image/color"
	"time"

	"term-life/internal/core"
	"term-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PixelGame adapts a simulation to the ebiten.Game interface for the
// optional pixel-window frontend.
type PixelGame struct {
	sim     core.Sim
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// NewPixelGame constructs a PixelGame for the provided simulation.
func NewPixelGame(sim core.Sim, scale int, seed int64) *PixelGame {
	size := sim.Size()
	return &PixelGame{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *PixelGame) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *PixelGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *PixelGame) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *PixelGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
