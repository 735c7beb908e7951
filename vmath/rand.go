package vmath

// --- Randomness ---

// FastRand is a xorshift64 (13, 17, 5) generator.
// Sequences are fully determined by the seed, which makes it usable as a
// replayable stream: reseed and consume N values to reach position N.
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator seeded with seed. Zero is a fixed point of
// xorshift and is replaced by 1.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Seed resets the generator state in place
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint64 is Next under the math/rand/v2 naming
func (r *FastRand) Uint64() uint64 {
	return r.Next()
}

// IntN returns a value in [0, n). Returns 0 for n <= 0.
func (r *FastRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
