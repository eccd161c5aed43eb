//go:build wilson_debug

package matrix

import "fmt"

// verify panics when an operation produced NaN or Inf.
func verify(op string, m *Matrix) *Matrix {
	if err := checkFinite(m.data); err != nil {
		panic(fmt.Sprintf("matrix: %s produced non-finite result: %v", op, err))
	}
	return m
}
