package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/math32"
)

// Vector4 is a four-dimensional vector with float32 components.
// In homogeneous coordinates the W component distinguishes points
// (W == 1) from directions (W == 0).
// Same value semantics and exact-equality caveat as Vector2.
type Vector4 struct {
	X, Y, Z, W float32
}

// Neg returns -v.
func (v Vector4) Neg() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// Add returns the component-wise sum of v and other.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns the component-wise difference, equivalent to v.Add(other.Neg()).
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v scaled component-wise by s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v.Scale(1 / s), with IEEE-754 semantics when s is zero.
func (v Vector4) Div(s float32) Vector4 {
	return v.Scale(1 / s)
}

// Dot returns the standard dot product of v and other.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Project returns the component of v parallel to other.
// Undefined when other is the zero vector.
func (v Vector4) Project(other Vector4) Vector4 {
	return other.Scale(v.Dot(other) / other.Dot(other))
}

// Reject returns the component of v orthogonal to other.
func (v Vector4) Reject(other Vector4) Vector4 {
	return v.Sub(v.Project(other))
}

// Magnitude returns the Euclidean length of v.
func (v Vector4) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// MagInverse returns 1 / v.Magnitude(); Inf when v is the zero vector.
func (v Vector4) MagInverse() float32 {
	return 1 / v.Magnitude()
}

// MagFastInv returns an approximation of 1 / v.Magnitude() using the
// fast inverse square root.
func (v Vector4) MagFastInv() float32 {
	return math32.FastInvSqrt(v.Dot(v))
}

// MagSquared returns v.Dot(v), the squared length.
func (v Vector4) MagSquared() float32 {
	return v.Dot(v)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector4) Normalize() Vector4 {
	return v.Scale(v.MagInverse())
}

// String renders v as "(x, y, z, w)".
func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
