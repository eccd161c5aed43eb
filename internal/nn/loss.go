package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/wilson/internal/matrix"
)

// SquaredError computes ½·Σ(guess - target)², the objective whose gradient
// MLP.Backward produces.
func SquaredError(guess, target *matrix.Matrix) (float64, error) {
	diff, err := guess.Sub(target)
	if err != nil {
		return 0, errors.Wrap(err, "squared error")
	}
	d := diff.Data()
	return 0.5 * floats.Dot(d, d), nil
}
