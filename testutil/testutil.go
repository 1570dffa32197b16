package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/hybridvec/lane"
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

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Fill fills dst with random integers in [1, 16) converted to T. The values
// are exact in every element type and never zero, so they are safe as
// divisors and keep float results reproducible across kernels.
func Fill[T lane.Number](r *RNG, dst []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = T(1 + r.rand.Intn(15))
	}
}

// Slice returns n values produced by Fill.
func Slice[T lane.Number](r *RNG, n int) []T {
	out := make([]T, n)
	Fill(r, out)
	return out
}

// SparsePattern returns distinct indices in [0, size), sorted ascending,
// each index present with the given probability.
func (r *RNG) SparsePattern(size int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []int
	for i := range size {
		if r.rand.Float64() < density {
			out = append(out, i)
		}
	}
	return out
}

// RaggedSizes returns every size in [1, limit] that is not a multiple of
// width. These sizes end in a partial lane.
func RaggedSizes(limit, width int) []int {
	var out []int
	for n := 1; n <= limit; n++ {
		if width < 2 || n%width != 0 {
			out = append(out, n)
		}
	}
	return out
}
