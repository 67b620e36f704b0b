package vecmath

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/math32"
)

// Vector3 is a three-dimensional vector with float32 components.
// Same value semantics and exact-equality caveat as Vector2.
type Vector3 struct {
	X, Y, Z float32
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference, equivalent to v.Add(other.Neg()).
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled component-wise by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v.Scale(1 / s), with IEEE-754 semantics when s is zero.
func (v Vector3) Div(s float32) Vector3 {
	return v.Scale(1 / s)
}

// Dot returns the standard dot product of v and other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other: a vector orthogonal to
// both, with magnitude |v||other|sin(theta). Anticommutative.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Project returns the component of v parallel to other.
// Undefined when other is the zero vector.
func (v Vector3) Project(other Vector3) Vector3 {
	return other.Scale(v.Dot(other) / other.Dot(other))
}

// Reject returns the component of v orthogonal to other.
func (v Vector3) Reject(other Vector3) Vector3 {
	return v.Sub(v.Project(other))
}

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// MagInverse returns 1 / v.Magnitude(); Inf when v is the zero vector.
func (v Vector3) MagInverse() float32 {
	return 1 / v.Magnitude()
}

// MagFastInv returns an approximation of 1 / v.Magnitude() using the
// fast inverse square root.
func (v Vector3) MagFastInv() float32 {
	return math32.FastInvSqrt(v.Dot(v))
}

// MagSquared returns v.Dot(v), the squared length.
func (v Vector3) MagSquared() float32 {
	return v.Dot(v)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(v.MagInverse())
}

// String renders v as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
