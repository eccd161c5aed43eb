// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense float64 matrices
// used by wilson networks.
//
// The package exposes:
//   - Matrix: immutable row-major matrix; every operation returns a new one
//   - Shape: rows × cols
//   - Populate: standard-normal initialization from a seeded generator
//
// Example:
//
//	a := matrix.MustNew([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.New([][]float64{{0.5}, {0.25}})
//	c, _ := a.Dot(b) // [[1], [2.5]]
package matrix
