package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/wilson/internal/parallel"
)

// kernelConfig controls row parallelism of Dot and Transform.
var kernelConfig = parallel.DefaultConfig()

// Add returns m + other elementwise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := sameShape("add", m, other); err != nil {
		return nil, err
	}
	out := newUnchecked(m.shape)
	floats.AddTo(out.data, m.data, other.data)
	return verify("add", out), nil
}

// Sub returns m - other elementwise.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := sameShape("sub", m, other); err != nil {
		return nil, err
	}
	out := newUnchecked(m.shape)
	floats.SubTo(out.data, m.data, other.data)
	return verify("sub", out), nil
}

// Hadamard returns the elementwise product m .* other.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := sameShape("hadamard", m, other); err != nil {
		return nil, err
	}
	out := newUnchecked(m.shape)
	floats.MulTo(out.data, m.data, other.data)
	return verify("hadamard", out), nil
}

// Scale returns s * m.
func (m *Matrix) Scale(s float64) *Matrix {
	out := newUnchecked(m.shape)
	floats.ScaleTo(out.data, s, m.data)
	return verify("scale", out)
}

// Dot returns the matrix product m · other.
// For m (r×n) and other (n×p): C[i][j] = Σ_k m[i][k] * other[k][j].
//
// Rows of the result are independent and may be computed concurrently; each
// element is accumulated by a single goroutine in ascending k, so the result
// is bit-identical to the sequential loop.
func (m *Matrix) Dot(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "dot: nil operand")
	}
	if m.shape.Cols != other.shape.Rows {
		return nil, errors.Wrapf(ErrShapeMismatch, "dot: %v · %v (inner dimensions %d vs %d)",
			m.shape, other.shape, m.shape.Cols, other.shape.Rows)
	}

	n, p := m.shape.Cols, other.shape.Cols
	out := newUnchecked(Shape{Rows: m.shape.Rows, Cols: p})

	parallel.ForWork(m.shape.Rows, n*p, func(i int) {
		a := m.row(i)
		c := out.row(i)
		for k := 0; k < n; k++ {
			aik := a[k]
			b := other.data[k*p : (k+1)*p]
			for j := range c {
				c[j] += aik * b[j]
			}
		}
	}, kernelConfig)

	return verify("dot", out), nil
}

// Transform applies fn to every element and returns the result.
func (m *Matrix) Transform(fn func(float64) float64) *Matrix {
	out := newUnchecked(m.shape)
	parallel.ForWork(m.shape.Rows, m.shape.Cols, func(i int) {
		src := m.row(i)
		dst := out.row(i)
		for j, v := range src {
			dst[j] = fn(v)
		}
	}, kernelConfig)
	return verify("transform", out)
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	out := newUnchecked(m.shape.T())
	rows, cols := m.shape.Rows, m.shape.Cols
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[i*cols+j]
		}
	}
	return out
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

func sameShape(op string, a, b *Matrix) error {
	if b == nil {
		return errors.Wrapf(ErrShapeMismatch, "%s: nil operand", op)
	}
	if !a.shape.Equal(b.shape) {
		return errors.Wrapf(ErrShapeMismatch, "%s: %v vs %v", op, a.shape, b.shape)
	}
	return nil
}
