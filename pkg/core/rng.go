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

// Configuration returns a uniformly random packed state for a board of the
// given number of cells.
func (r *RNG) Configuration(cells int) uint64 {
	if cells <= 0 {
		return 0
	}
	v := r.r.Uint64()
	if cells >= 64 {
		return v
	}
	return v & (uint64(1)<<uint(cells) - 1)
}

// Fill randomizes every cell of b.
func (r *RNG) Fill(b *Board) {
	cells := b.Cells()
	for i := range cells {
		cells[i] = FromBool(r.Bool())
	}
}
