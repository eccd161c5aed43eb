package matrix

import (
	"fmt"

	"github.com/pkg/errors"
)

// Shape is the row and column count of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns Rows*Cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that both dimensions are > 0.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return errors.Wrapf(ErrBadShape, "%v (dimensions must be > 0)", s)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// T returns the transposed shape.
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// String formats the shape as [rows×cols].
func (s Shape) String() string {
	return fmt.Sprintf("[%d×%d]", s.Rows, s.Cols)
}
