package vecmath_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/util"
)

// The vector-space axioms hold bit-exactly when components and scalars
// are small integers, since every intermediate value is exactly
// representable in float32. The draws below stay in that regime so the
// checks can use exact equality, just like the axioms demand.
func TestVectorSpaceAxioms(t *testing.T) {
	rng := util.NewRNG(4711)

	for i := 0; i < 200; i++ {
		a := rng.Vector3(-10, 10)
		b := rng.Vector3(-10, 10)
		c := rng.Vector3(-10, 10)
		s := float32(rng.IntInRange(1, 8))
		u := float32(rng.IntInRange(1, 8))

		// Addition is commutative.
		require.Equal(t, b.Add(a), a.Add(b))

		// Addition is associative.
		require.Equal(t, a.Add(b.Add(c)), a.Add(b).Add(c))

		// Scalar multiplication is associative.
		require.Equal(t, a.Scale(u).Scale(s), a.Scale(s*u))

		// Scalar multiplication distributes over vector addition.
		require.Equal(t, a.Scale(s).Add(b.Scale(s)), a.Add(b).Scale(s))

		// Scalar multiplication distributes over scalar addition.
		require.Equal(t, a.Scale(s).Add(a.Scale(u)), a.Scale(s+u))

		// Every vector has an additive inverse.
		require.Equal(t, vecmath.Vector3{}, a.Add(a.Neg()))
	}
}

func TestVectorSpaceAxioms2D(t *testing.T) {
	rng := util.NewRNG(1337)

	for i := 0; i < 200; i++ {
		a := rng.Vector2(-10, 10)
		b := rng.Vector2(-10, 10)
		s := float32(rng.IntInRange(1, 8))

		require.Equal(t, b.Add(a), a.Add(b))
		require.Equal(t, a.Scale(s).Add(b.Scale(s)), a.Add(b).Scale(s))
		require.Equal(t, vecmath.Vector2{}, a.Add(a.Neg()))
	}
}

func TestVectorSpaceAxioms4D(t *testing.T) {
	rng := util.NewRNG(2701)

	for i := 0; i < 200; i++ {
		a := rng.Vector4(-10, 10)
		b := rng.Vector4(-10, 10)
		s := float32(rng.IntInRange(1, 8))

		require.Equal(t, b.Add(a), a.Add(b))
		require.Equal(t, a.Scale(s).Add(b.Scale(s)), a.Add(b).Scale(s))
		require.Equal(t, vecmath.Vector4{}, a.Add(a.Neg()))
	}
}

func TestProjectRejectRecompose(t *testing.T) {
	rng := util.NewRNG(99)

	for i := 0; i < 100; i++ {
		a := rng.Vector3(-10, 10)
		b := rng.Vector3(-10, 10)
		if b == (vecmath.Vector3{}) {
			continue
		}

		got := a.Project(b).Add(a.Reject(b))
		require.InDelta(t, a.X, got.X, 1e-3)
		require.InDelta(t, a.Y, got.Y, 1e-3)
		require.InDelta(t, a.Z, got.Z, 1e-3)
	}
}

// Vector values are immutable, so concurrent use of shared vectors
// needs no synchronization.
func TestConcurrentUse(t *testing.T) {
	v := vecmath.Vector3{X: 1, Y: 2, Z: 3}
	w := vecmath.Vector3{X: 4, Y: 5, Z: 6}
	want := v.Add(w).Scale(2)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 10000; j++ {
				if got := v.Add(w).Scale(2); got != want {
					return fmt.Errorf("unexpected result: %v", got)
				}
				if got := v.Dot(w); got != 32 {
					return fmt.Errorf("unexpected dot product: %v", got)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
