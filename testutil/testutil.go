package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vec3/vector"
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
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) //nolint:gosec // test data
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64Range returns a pseudo-random number in [-scale, scale).
func (r *RNG) Float64Range(scale float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.float64Range(scale)
}

func (r *RNG) float64Range(scale float64) float64 {
	return (r.rand.Float64()*2 - 1) * scale
}

// Vector returns a vector with components in [-scale, scale).
func (r *RNG) Vector(scale float64) vector.Vector3d {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vector.New(r.float64Range(scale), r.float64Range(scale), r.float64Range(scale))
}

// Vectors returns num vectors with components in [-scale, scale).
// Locks only once per call.
func (r *RNG) Vectors(num int, scale float64) []vector.Vector3d {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vector.Vector3d, num)
	for i := range out {
		out[i] = vector.New(r.float64Range(scale), r.float64Range(scale), r.float64Range(scale))
	}
	return out
}

// ASCIIString returns a random string of n printable ASCII bytes.
func (r *RNG) ASCIIString(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = byte(' ' + r.rand.Intn('~'-' '+1))
	}
	return string(b)
}
