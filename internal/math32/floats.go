// Package math32 provides scalar float32 kernels for the vector types.
// This is an internal package - external users should use the vecmath package.
package math32

import "math"

// Sqrt returns the square root of x as float32.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// InvSqrt returns the exact 1/Sqrt(x); Inf when x is zero.
func InvSqrt(x float32) float32 {
	return 1 / Sqrt(x)
}

// FastInvSqrt approximates 1/Sqrt(x) with the classic bit-level trick:
// reinterpret x as an integer, shift it against a magic constant,
// reinterpret back, then refine with one Newton-Raphson step.
//
// Relative error stays under about 0.2% for positive finite x. Callers
// that need full precision should use InvSqrt instead.
func FastInvSqrt(x float32) float32 {
	i := math.Float32bits(x)
	i = 0x5f3759df - i>>1
	y := math.Float32frombits(i)
	y *= 1.5 - 0.5*x*y*y
	return y
}
