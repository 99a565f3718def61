package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// SafeMax is the largest integer a float64 represents along with all smaller ones.
const SafeMax = 1<<53 - 1

// Edges lists values on and around the safe range and the int64 range.
var Edges = []int64{
	0, 1, -1,
	SafeMax - 1, SafeMax, SafeMax + 1, SafeMax + 2,
	-SafeMax + 1, -SafeMax, -SafeMax - 1, -SafeMax - 2,
	1 << 55, -(1 << 55),
	math.MaxInt32, math.MinInt32,
	math.MaxInt64, math.MinInt64,
}

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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int64 returns a pseudo-random int64 over the full int64 range.
func (r *RNG) Int64() int64 {
	return int64(r.Uint64())
}

// Int64s returns n values. A quarter are Edges, a quarter lie within 16 of
// ±SafeMax and the rest are uniform over int64.
// Locks only once per call.
func (r *RNG) Int64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		switch r.rand.Intn(4) {
		case 0:
			out[i] = Edges[r.rand.Intn(len(Edges))]
		case 1:
			v := int64(SafeMax) - 16 + r.rand.Int63n(33)
			if r.rand.Intn(2) == 0 {
				v = -v
			}
			out[i] = v
		default:
			out[i] = int64(r.rand.Uint64())
		}
	}
	return out
}
