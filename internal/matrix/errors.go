package matrix

import "github.com/pkg/errors"

// Sentinel errors returned by constructors and operations.
var (
	// ErrShapeMismatch indicates operand dimensions are incompatible.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrBadShape indicates a non-positive dimension or empty input.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf indicates a NaN or ±Inf element.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
