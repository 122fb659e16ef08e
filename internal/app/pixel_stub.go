//go:build !ebiten

package app

import (
	"fmt"

	"term-life/internal/core"
)

// PixelGame is a placeholder that satisfies the API expected by the GUI build.
type PixelGame struct{}

// NewPixelGame panics to indicate that the ebiten build tag is required for
// GUI support.
func NewPixelGame(core.Sim, int, int64) *PixelGame {
	panic("app.NewPixelGame requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *PixelGame) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *PixelGame) Update() error {
	return fmt.Errorf("app.PixelGame.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *PixelGame) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *PixelGame) Layout(int, int) (int, int) { return 0, 0 }
