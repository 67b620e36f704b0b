// Package vecmath provides small fixed-dimension float32 vector types
// for game programming: Vector2, Vector3, and Vector4 with the usual
// arithmetic and geometric operations.
//
// # Quick Start
//
//	a := vecmath.Vector3{X: 1, Y: 2, Z: 3}
//	b := vecmath.Vector3{X: 4, Y: 5, Z: 6}
//
//	sum := a.Add(b)          // (5, 7, 9)
//	d := a.Dot(b)            // 32
//	along := a.Project(b)    // component of a parallel to b
//	across := a.Reject(b)    // component of a orthogonal to b
//	fmt.Println(sum)         // "(5, 7, 9)"
//
// # Value Semantics
//
// Every vector is an immutable value: operations return new vectors and
// never mutate their receiver, so sharing vectors across goroutines is
// safe without synchronization. The zero value of each type is the zero
// vector.
//
// # Equality
//
// The types are comparable, and == means bit-exact component equality.
// Near-equal vectors produced by different operation orders will compare
// unequal; that is intentional. Callers needing tolerance comparison
// should compare component deltas against their own epsilon.
//
// # Numeric Edge Cases
//
// No operation validates its inputs. Dividing by zero, projecting onto
// the zero vector, or normalizing the zero vector yields Inf or NaN
// components that propagate per IEEE-754 rather than raising an error.
// Avoiding the degenerate calls is the caller's responsibility.
//
// # Lengths
//
// Magnitude is the Euclidean norm. MagSquared skips the square root and
// is the right choice when lengths are only being compared. MagFastInv
// approximates the reciprocal length with the classic fast inverse
// square root; use MagInverse when precision matters.
package vecmath
