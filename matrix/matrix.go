// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand/v2"

	"github.com/born-ml/wilson/internal/matrix"
)

// Type aliases for public API

// Matrix is a dense row-major float64 matrix.
type Matrix = matrix.Matrix

// Shape represents the dimensions of a matrix.
type Shape = matrix.Shape

// Errors

var (
	// ErrShapeMismatch indicates operand dimensions are incompatible.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrBadShape indicates a non-positive dimension or empty input.
	ErrBadShape = matrix.ErrBadShape

	// ErrNaNInf indicates a NaN or ±Inf element.
	ErrNaNInf = matrix.ErrNaNInf
)

// Constructors

// New creates a matrix from rows. Input is copied; empty, ragged and
// non-finite input is rejected.
func New(rows [][]float64) (*Matrix, error) {
	return matrix.New(rows)
}

// MustNew is New that panics on error.
func MustNew(rows [][]float64) *Matrix {
	return matrix.MustNew(rows)
}

// FromSlice creates a matrix from row-major data.
func FromSlice(data []float64, shape Shape) (*Matrix, error) {
	return matrix.FromSlice(data, shape)
}

// Zeros creates a zero-filled matrix.
func Zeros(shape Shape) (*Matrix, error) {
	return matrix.Zeros(shape)
}

// RowVector wraps v as a 1×n matrix.
func RowVector(v []float64) (*Matrix, error) {
	return matrix.RowVector(v)
}

// Populate fills a matrix with standard-normal samples drawn from rng.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 1))
//	w, _ := matrix.Populate(matrix.Shape{Rows: 2, Cols: 3}, rng)
func Populate(shape Shape, rng *rand.Rand) (*Matrix, error) {
	return matrix.Populate(shape, rng)
}
