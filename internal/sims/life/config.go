package life

import "strconv"

// DefaultDensity is the denominator of the seeding probability: each cell of
// a fresh board is alive with chance 1 in DefaultDensity.
const DefaultDensity = 3

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Density int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: DefaultDensity}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed%2 == 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Density = parsed
		}
	}
	return c
}
