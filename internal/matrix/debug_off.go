//go:build !wilson_debug

package matrix

func verify(_ string, m *Matrix) *Matrix {
	return m
}
