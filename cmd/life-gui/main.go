//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"time"

	"term-life/internal/app"
	"term-life/internal/core"
	_ "term-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 3, "pixel scale multiplier")
	width := flag.Int("w", 256, "grid width in cells")
	height := flag.Int("h", 256, "grid height in cells (must be even)")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(map[string]string{
		"w":       strconv.Itoa(*width),
		"h":       strconv.Itoa(*height),
		"density": strconv.Itoa(cfg.Density),
	})
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim.Reset(seed)

	game := app.NewPixelGame(sim, *scale, seed)
	size := sim.Size()

	tps := int(time.Second / cfg.Interval)
	if tps < 1 {
		tps = 1
	}

	ebiten.SetWindowTitle("term-life — " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W**scale, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
