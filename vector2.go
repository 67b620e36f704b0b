package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/math32"
)

// Vector2 is a two-dimensional vector with float32 components.
//
// Vector2 is a plain value type: two vectors with equal components are
// interchangeable, and every operation returns a new value instead of
// mutating its receiver. The zero value is the zero vector.
//
// Comparison with == is bit-exact. Vectors that are merely close compare
// unequal; callers that need tolerance comparison must supply their own
// epsilon. Components are never validated, so NaN and Inf inputs
// propagate through every operation per IEEE-754.
type Vector2 struct {
	X, Y float32
}

// Neg returns -v, the vector such that v.Add(v.Neg()) is the zero vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Add returns the component-wise sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference, equivalent to v.Add(other.Neg()).
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled component-wise by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Div returns v.Scale(1 / s). Division by zero follows IEEE-754: the
// result carries Inf or NaN components and no error is raised.
func (v Vector2) Div(s float32) Vector2 {
	return v.Scale(1 / s)
}

// Dot returns the standard dot product of v and other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Project returns the component of v parallel to other. The result is
// undefined (Inf/NaN components) when other is the zero vector; the
// degenerate case is deliberately not guarded.
func (v Vector2) Project(other Vector2) Vector2 {
	return other.Scale(v.Dot(other) / other.Dot(other))
}

// Reject returns the component of v orthogonal to other, so that
// v.Project(other).Add(v.Reject(other)) recovers v up to rounding.
// Same zero-vector caveat as Project.
func (v Vector2) Reject(other Vector2) Vector2 {
	return v.Sub(v.Project(other))
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// MagInverse returns 1 / v.Magnitude(); Inf when v is the zero vector.
func (v Vector2) MagInverse() float32 {
	return 1 / v.Magnitude()
}

// MagFastInv returns an approximation of 1 / v.Magnitude() computed with
// the fast inverse square root. It trades precision for speed; use
// MagInverse when exactness matters.
func (v Vector2) MagFastInv() float32 {
	return math32.FastInvSqrt(v.Dot(v))
}

// MagSquared returns v.Dot(v), the squared length. Prefer it over
// Magnitude for ordering comparisons, as it skips the square root.
func (v Vector2) MagSquared() float32 {
	return v.Dot(v)
}

// Normalize returns the unit vector in the direction of v.
// NaN components when v is the zero vector.
func (v Vector2) Normalize() Vector2 {
	return v.Scale(v.MagInverse())
}

// String renders v as "(x, y)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
