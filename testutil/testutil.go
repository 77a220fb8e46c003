package testutil

import (
	"math"
	"math/rand"
	"slices"
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

// Int64 returns a pseudo-random int64 over the full range, negative values
// included.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(r.rand.Uint64())
}

// Int64s returns n pseudo-random int64 values.
// Locks only once per call (preferred over calling Int64 in a loop).
func (r *RNG) Int64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(r.rand.Uint64())
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Range returns [0, 1, ..., n-1].
func Range(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}

// Model is the obvious slice-backed sequence. Tests apply the same
// operations to a Model and a sequence and compare the results.
type Model struct {
	vals []int64
}

// NewModel returns a model holding a copy of vals.
func NewModel(vals []int64) *Model {
	return &Model{vals: slices.Clone(vals)}
}

// Len returns the number of elements.
func (m *Model) Len() int { return len(m.vals) }

// Get returns the element at i.
func (m *Model) Get(i int) int64 { return m.vals[i] }

// Set replaces the element at i and returns the previous value.
func (m *Model) Set(i int, v int64) int64 {
	old := m.vals[i]
	m.vals[i] = v
	return old
}

// Append adds v at the end.
func (m *Model) Append(v int64) { m.vals = append(m.vals, v) }

// Insert places v at i.
func (m *Model) Insert(i int, v int64) { m.vals = slices.Insert(m.vals, i, v) }

// Remove deletes and returns the element at i.
func (m *Model) Remove(i int) int64 {
	v := m.vals[i]
	m.vals = slices.Delete(m.vals, i, i+1)
	return v
}

// Values returns a copy of the contents.
func (m *Model) Values() []int64 { return slices.Clone(m.vals) }
