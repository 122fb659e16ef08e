package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Interval time.Duration
	Seed     int64
	Density  int
}

// NewConfig returns a Config populated with sensible defaults. The zero seed
// means "derive from the clock at startup".
func NewConfig() *Config {
	return &Config{Sim: "life", Interval: 32 * time.Millisecond, Seed: 0, Density: 3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 uses the clock)")
	fs.IntVar(&c.Density, "density", c.Density, "1-in-N chance a cell starts alive")
}
