package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBernoulli fills the buffer with independent trials where each cell is
// alive with probability 1/n. A lower n means more initial alive cells.
func FillBernoulli(r *rand.Rand, buf []bool, n int) {
	if n < 1 {
		n = 1
	}
	for i := range buf {
		buf[i] = r.IntN(n) == 0
	}
}
