package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/born-ml/wilson/internal/matrix"
)

// RandomWeights draws a [fanIn, fanOut] weight matrix from N(0, 1) using
// Box-Muller samples from rng.
func RandomWeights(fanIn, fanOut int, rng *rand.Rand) (*matrix.Matrix, error) {
	w, err := matrix.Populate(matrix.Shape{Rows: fanIn, Cols: fanOut}, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "random weights %d→%d", fanIn, fanOut)
	}
	return w, nil
}
