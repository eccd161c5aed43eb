package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax normalizes v into a probability distribution:
//
//	softmax(v)_i = exp(v_i) / Σ_j exp(v_j)
//
// The maximum is subtracted before exponentiation; the result is the same
// but large inputs cannot overflow. Returns nil for an empty vector.
func Softmax(v []float64) []float64 {
	if len(v) == 0 {
		return nil
	}

	maxVal := floats.Max(v)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Exp(x - maxVal)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

// ArgMax returns the index of the largest element, the lowest index on
// ties, or -1 for an empty vector.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}
