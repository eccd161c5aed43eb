package matrix

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix of float64 values.
//
// The zero value is not usable; construct with New, FromSlice, Zeros or
// Populate.
type Matrix struct {
	shape Shape
	data  []float64
}

// New creates a matrix from nested rows. The input is copied.
//
// Every row must have the same, non-zero length and every element must be
// finite.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrBadShape, "new: empty input")
	}

	shape := Shape{Rows: len(rows), Cols: len(rows[0])}
	data := make([]float64, 0, shape.NumElements())
	for i, row := range rows {
		if len(row) != shape.Cols {
			return nil, errors.Wrapf(ErrShapeMismatch, "new: row %d has %d columns, want %d", i, len(row), shape.Cols)
		}
		data = append(data, row...)
	}

	if err := checkFinite(data); err != nil {
		return nil, errors.Wrap(err, "new")
	}

	return &Matrix{shape: shape, data: data}, nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// examples.
func MustNew(rows [][]float64) *Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// FromSlice creates a matrix from row-major data. The slice is copied.
func FromSlice(data []float64, shape Shape) (*Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "from slice: shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(data))
	}
	if err := checkFinite(data); err != nil {
		return nil, errors.Wrap(err, "from slice")
	}

	owned := make([]float64, len(data))
	copy(owned, data)
	return &Matrix{shape: shape, data: owned}, nil
}

// Zeros creates a zero-filled matrix.
func Zeros(shape Shape) (*Matrix, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Matrix{shape: shape, data: make([]float64, shape.NumElements())}, nil
}

// RowVector wraps a single vector as a 1×n matrix.
func RowVector(v []float64) (*Matrix, error) {
	return FromSlice(v, Shape{Rows: 1, Cols: len(v)})
}

// newUnchecked allocates a result matrix for an operation.
func newUnchecked(shape Shape) *Matrix {
	return &Matrix{shape: shape, data: make([]float64, shape.NumElements())}
}

// Shape returns the matrix shape.
func (m *Matrix) Shape() Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.shape.Rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.shape.Cols
}

// At returns the element at row i, column j. Panics when out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.shape.Rows || j < 0 || j >= m.shape.Cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %v", i, j, m.shape))
	}
	return m.data[i*m.shape.Cols+j]
}

// Row returns a copy of row i. Panics when out of range.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.shape.Rows {
		panic(fmt.Sprintf("matrix: row %d out of range for %v", i, m.shape))
	}
	out := make([]float64, m.shape.Cols)
	copy(out, m.row(i))
	return out
}

// row returns row i without copying.
func (m *Matrix) row(i int) []float64 {
	return m.data[i*m.shape.Cols : (i+1)*m.shape.Cols]
}

// ToArray returns the elements as freshly allocated nested rows.
func (m *Matrix) ToArray() [][]float64 {
	out := make([][]float64, m.shape.Rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Data returns a copy of the row-major backing data.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Dense returns a gonum copy of the matrix.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.shape.Rows, m.shape.Cols, m.Data())
}

// Equal reports whether both matrices have the same shape and every pair of
// elements differs by at most tol.
func (m *Matrix) Equal(other *Matrix, tol float64) bool {
	if other == nil || !m.shape.Equal(other.shape) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the matrix as nested rows.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v%v", m.shape, m.ToArray())
}

func checkFinite(data []float64) error {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrNaNInf, "element %d is %v", i, v)
		}
	}
	return nil
}
