package main

import (
	"flag"
	"log"

	"term-life/internal/app"
	"term-life/internal/core"
	_ "term-life/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	if err := app.New(cfg, factory).Run(); err != nil {
		log.Fatal(err)
	}
}
