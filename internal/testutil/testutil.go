package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillInts fills dst with random values in [0, limit).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillInts(dst []int, limit int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Intn(limit)
	}
}

// Words returns n random 64-bit word patterns. The density parameter in
// [0,1] controls roughly what fraction of bits are set; density 0.5 yields
// uniform words.
func (r *RNG) Words(n int, density float64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		w := r.rand.Uint64()
		switch {
		case density < 0.5:
			// AND-ing independent uniform words thins the bit density.
			for d := density; d < 0.5; d *= 2 {
				w &= r.rand.Uint64()
			}
		case density > 0.5:
			for d := density; d > 0.5; d = 1 - (1-d)*2 {
				w |= r.rand.Uint64()
			}
		}
		out[i] = w
	}
	return out
}
