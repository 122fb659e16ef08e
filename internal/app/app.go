package app

import (
	"strconv"
	"time"

	"term-life/internal/core"
	"term-life/internal/render"
	"term-life/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// frameInterval is how often the main loop wakes to check the tick pacer.
const frameInterval = 16 * time.Millisecond

// App drives a simulation on a tcell screen: it owns the terminal session,
// the input loop and the tick pacing. The simulation itself stays oblivious
// to all of it.
type App struct {
	screen  tcell.Screen
	cfg     *Config
	factory core.Factory

	sim   core.Sim
	pacer *core.FixedStep
	hud   *ui.HUD

	paused   bool
	tickOnce bool
}

// New prepares an App around the given simulation factory. The screen is not
// touched until Run.
func New(cfg *Config, factory core.Factory) *App {
	return &App{
		cfg:     cfg,
		factory: factory,
		pacer:   core.NewFixedStep(cfg.Interval),
		hud:     ui.NewHUD(),
	}
}

// Run acquires the terminal, drives the simulation until quit and restores
// the terminal on every exit path.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	a.screen = screen
	a.rebuildSim(a.initialSeed())
	a.draw()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if (!a.paused && a.pacer.ShouldStep()) || a.tickOnce {
				a.sim.Step()
				a.tickOnce = false
				a.draw()
			}
		}
	}
}

func (a *App) initialSeed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	return time.Now().UnixNano()
}

// rebuildSim constructs a fresh simulation sized to the terminal: one cell
// column per screen column and two cell rows per screen row, so the grid
// height is even by construction.
func (a *App) rebuildSim(seed int64) {
	cols, rows := a.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	a.sim = a.factory(map[string]string{
		"w":       strconv.Itoa(cols),
		"h":       strconv.Itoa(rows * 2),
		"density": strconv.Itoa(a.cfg.Density),
	})
	a.sim.Reset(seed)
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.rebuildSim(time.Now().UnixNano())
		a.draw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.hud.Toggle()
		a.draw()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'p', ' ':
		a.paused = !a.paused
		a.draw()
	case 's':
		if a.paused {
			a.tickOnce = true
		}
	case '+', '=':
		a.pacer.Faster()
		a.draw()
	case '-':
		a.pacer.Slower()
		a.draw()
	case 'r':
		a.rebuildSim(time.Now().UnixNano())
		a.draw()
	}
	return true
}

func (a *App) draw() {
	a.screen.Clear()
	render.Blit(&screenSurface{a.screen}, a.sim.Grid())
	a.hud.Draw(a.screen, a.sim, a.paused, a.pacer.Interval())
	a.screen.Show()
}

// screenSurface adapts a tcell screen to the renderer's cell surface.
type screenSurface struct {
	s tcell.Screen
}

func (s *screenSurface) SetContent(x, y int, r rune) {
	s.s.SetContent(x, y, r, nil, tcell.StyleDefault)
}

func (s *screenSurface) Size() (int, int) { return s.s.Size() }
