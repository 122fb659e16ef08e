package ui

import (
	"fmt"
	"strings"
	"time"

	"term-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

// generationCounter is implemented by sims that track their step count.
type generationCounter interface {
	Generation() int
}

// HUD renders a one-line status bar along the bottom of the screen. It is
// hidden by default and toggled from the driver.
type HUD struct {
	visible bool
}

// NewHUD constructs a hidden HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle flips the HUD visibility and reports the new state.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Visible reports whether the HUD is currently shown.
func (h *HUD) Visible() bool { return h.visible }

// Draw writes the status line over the bottom screen row. A hidden HUD draws
// nothing.
func (h *HUD) Draw(screen tcell.Screen, sim core.Sim, paused bool, interval time.Duration) {
	if !h.visible {
		return
	}
	w, sh := screen.Size()
	if sh == 0 || w == 0 {
		return
	}

	line := []rune(StatusLine(sim, paused, interval))
	if len(line) > w {
		line = line[:w]
	}
	style := tcell.StyleDefault.Reverse(true)
	y := sh - 1
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		screen.SetContent(x, y, r, nil, style)
	}
}

// StatusLine formats the HUD text for the given simulation state.
func StatusLine(sim core.Sim, paused bool, interval time.Duration) string {
	parts := []string{sim.Name()}

	size := sim.Size()
	parts = append(parts, fmt.Sprintf("%dx%d", size.W, size.H))

	if gc, ok := sim.(generationCounter); ok {
		parts = append(parts, fmt.Sprintf("gen %d", gc.Generation()))
	}
	parts = append(parts, interval.String())
	if paused {
		parts = append(parts, "paused")
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			if group.Summary != "" {
				parts = append(parts, group.Summary)
			}
		}
	}
	return " " + strings.Join(parts, " | ") + " "
}
