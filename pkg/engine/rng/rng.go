// Package rng abstracts the random source used by level generation so that
// mazes and hazard layouts are reproducible from a seed.
package rng

import "math/rand"

// Source is the subset of *rand.Rand the generators need.
type Source interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// New returns a seeded source. The same seed always yields the same stream.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Shuffle performs an in-place Fisher–Yates shuffle driven by src
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sign returns -1 or +1 with equal probability
func Sign(src Source) float64 {
	if src.Float64() < 0.5 {
		return -1
	}
	return 1
}

// First is a degenerate source that always picks the first option:
// Intn returns 0 and Float64 returns 0. Useful for reproducing layouts by hand.
type First struct{}

// Intn always returns 0
func (First) Intn(n int) int { return 0 }

// Float64 always returns 0
func (First) Float64() float64 { return 0 }
