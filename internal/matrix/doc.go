// Package matrix implements the dense two-dimensional float64 matrix used by
// the network engine.
//
// Matrices are immutable by convention: every operation returns a new
// instance and never writes into its operands. Network state changes by
// reassigning the variable that owns a matrix, not by mutating it.
//
// Shape-fallible operations (Add, Sub, Hadamard, Dot) return ErrShapeMismatch
// instead of truncating or padding. Construction rejects ragged rows and
// non-finite values.
//
// Example:
//
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	b := a.Transpose()
//	c, err := a.Dot(b) // 2×2 · 2×2 → 2×2
package matrix
