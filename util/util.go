// Package util provides seeded randomness helpers for demos and tests.
// The core vecmath package depends on none of this.
package util

import (
	"math/rand"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// IntInRange returns a uniformly distributed integer in the inclusive
// range [lo, hi]. Panics if hi < lo.
func (r *RNG) IntInRange(lo, hi int) int {
	return lo + r.rand.Intn(hi-lo+1)
}

// Vector2 returns a Vector2 whose components are integers drawn from
// [lo, hi]. Integer components keep small sums exactly representable,
// which makes exact equality checks on axiom identities reliable.
func (r *RNG) Vector2(lo, hi int) vecmath.Vector2 {
	return vecmath.Vector2{
		X: float32(r.IntInRange(lo, hi)),
		Y: float32(r.IntInRange(lo, hi)),
	}
}

// Vector3 returns a Vector3 whose components are integers drawn from [lo, hi].
func (r *RNG) Vector3(lo, hi int) vecmath.Vector3 {
	return vecmath.Vector3{
		X: float32(r.IntInRange(lo, hi)),
		Y: float32(r.IntInRange(lo, hi)),
		Z: float32(r.IntInRange(lo, hi)),
	}
}

// Vector4 returns a Vector4 whose components are integers drawn from [lo, hi].
func (r *RNG) Vector4(lo, hi int) vecmath.Vector4 {
	return vecmath.Vector4{
		X: float32(r.IntInRange(lo, hi)),
		Y: float32(r.IntInRange(lo, hi)),
		Z: float32(r.IntInRange(lo, hi)),
		W: float32(r.IntInRange(lo, hi)),
	}
}
