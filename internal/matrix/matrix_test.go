package matrix

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/wilson/internal/parallel"
)

const tol = 1e-9

func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *Matrix {
	t.Helper()
	m, err := Populate(Shape{Rows: rows, Cols: cols}, rng)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	m, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, Shape{Rows: 2, Cols: 3}, m.Shape())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToArray())
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustNew(rows)

	rows[0][0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))

	out := m.ToArray()
	out[1][1] = -1
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, ErrBadShape},
		{"empty row", [][]float64{{}}, ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, ErrShapeMismatch},
		{"nan", [][]float64{{1, math.NaN()}}, ErrNaNInf},
		{"inf", [][]float64{{math.Inf(-1)}}, ErrNaNInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{Rows: 3, Cols: 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToArray())

	_, err = FromSlice([]float64{1, 2, 3}, Shape{Rows: 2, Cols: 2})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = FromSlice(nil, Shape{Rows: 0, Cols: 2})
	assert.True(t, errors.Is(err, ErrBadShape))
}

func TestZeros(t *testing.T) {
	m, err := Zeros(Shape{Rows: 2, Cols: 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Sum())
}

func TestAt_OutOfRangePanics(t *testing.T) {
	m := MustNew([][]float64{{1}})
	assert.Panics(t, func() { m.At(1, 0) })
	assert.Panics(t, func() { m.Row(-1) })
}

func TestAddSub(t *testing.T) {
	a := MustNew([][]float64{{1, 2}, {3, 4}})
	b := MustNew([][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.ToArray())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-9, -18}, {-27, -36}}, diff.ToArray())

	// Operands untouched.
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToArray())
	assert.Equal(t, [][]float64{{10, 20}, {30, 40}}, b.ToArray())
}

func TestHadamard(t *testing.T) {
	a := MustNew([][]float64{{1, 2}, {3, 4}})
	b := MustNew([][]float64{{2, 0}, {-1, 0.5}})

	got, err := a.Hadamard(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 0}, {-3, 2}}, got.ToArray())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := MustNew([][]float64{{1, 2}})
	b := MustNew([][]float64{{1}, {2}})

	ops := map[string]func(*Matrix) (*Matrix, error){
		"add":      a.Add,
		"sub":      a.Sub,
		"hadamard": a.Hadamard,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			out, err := op(b)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)

			_, err = op(nil)
			assert.True(t, errors.Is(err, ErrShapeMismatch))
		})
	}
}

func TestDot(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustNew([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 2, Cols: 2}, c.Shape())
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.ToArray())
}

func TestDot_ShapeMismatch(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}})
	b := MustNew([][]float64{{1, 2}, {3, 4}})

	_, err := a.Dot(b)
	assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)

	_, err = a.Dot(nil)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestDot_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	a := randomMatrix(t, rng, 7, 5)
	b := randomMatrix(t, rng, 5, 9)

	got, err := a.Dot(b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(a.Dense(), b.Dense())

	assert.True(t, mat.EqualApprox(got.Dense(), &want, tol))
}

func TestDot_ParallelIsBitIdentical(t *testing.T) {
	saved := kernelConfig
	defer func() { kernelConfig = saved }()

	rng := rand.New(rand.NewPCG(3, 4))
	a := randomMatrix(t, rng, 200, 40)
	b := randomMatrix(t, rng, 40, 30)

	kernelConfig = parallel.Sequential()
	seq, err := a.Dot(b)
	require.NoError(t, err)

	kernelConfig = parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 2}
	par, err := a.Dot(b)
	require.NoError(t, err)

	assert.Equal(t, seq.Data(), par.Data())
}

func TestTransform(t *testing.T) {
	a := MustNew([][]float64{{1, -2}, {3, -4}})

	sq := a.Transform(func(v float64) float64 { return v * v })
	assert.Equal(t, [][]float64{{1, 4}, {9, 16}}, sq.ToArray())
	assert.Equal(t, [][]float64{{1, -2}, {3, -4}}, a.ToArray())
}

func TestScale(t *testing.T) {
	a := MustNew([][]float64{{1, -2}})
	assert.Equal(t, [][]float64{{0.5, -1}}, a.Scale(0.5).ToArray())
}

func TestTranspose(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	at := a.Transpose()

	assert.Equal(t, Shape{Rows: 3, Cols: 2}, at.Shape())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToArray())
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for trial := 0; trial < 20; trial++ {
		m := 1 + rng.IntN(5)
		n := 1 + rng.IntN(5)
		p := 1 + rng.IntN(5)
		q := 1 + rng.IntN(5)

		a := randomMatrix(t, rng, m, n)
		a2 := randomMatrix(t, rng, m, n)
		b := randomMatrix(t, rng, n, p)
		b2 := randomMatrix(t, rng, n, p)
		c := randomMatrix(t, rng, p, q)

		// transpose(transpose(A)) == A
		assert.True(t, a.Transpose().Transpose().Equal(a, 0))

		// (A + A2) - A2 == A
		sum, err := a.Add(a2)
		require.NoError(t, err)
		back, err := sum.Sub(a2)
		require.NoError(t, err)
		assert.True(t, back.Equal(a, tol))

		// (AB)C == A(BC)
		ab, err := a.Dot(b)
		require.NoError(t, err)
		abc1, err := ab.Dot(c)
		require.NoError(t, err)
		bc, err := b.Dot(c)
		require.NoError(t, err)
		abc2, err := a.Dot(bc)
		require.NoError(t, err)
		assert.True(t, abc1.Equal(abc2, tol))

		// A(B + B2) == AB + AB2
		bsum, err := b.Add(b2)
		require.NoError(t, err)
		left, err := a.Dot(bsum)
		require.NoError(t, err)
		ab2, err := a.Dot(b2)
		require.NoError(t, err)
		right, err := ab.Add(ab2)
		require.NoError(t, err)
		assert.True(t, left.Equal(right, tol))

		// (AB)ᵀ == BᵀAᵀ
		btat, err := b.Transpose().Dot(a.Transpose())
		require.NoError(t, err)
		assert.True(t, ab.Transpose().Equal(btat, tol))
	}
}

func TestPopulate(t *testing.T) {
	shape := Shape{Rows: 100, Cols: 51}

	a, err := Populate(shape, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := Populate(shape, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	assert.Equal(t, shape, a.Shape())
	assert.Equal(t, a.Data(), b.Data(), "same seed must give the same weights")

	data := a.Data()
	mean := a.Sum() / float64(len(data))
	variance := 0.0
	for _, v := range data {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(data))

	assert.InDelta(t, 0.0, mean, 0.1)
	assert.InDelta(t, 1.0, variance, 0.15)

	_, err = Populate(Shape{Rows: 0, Cols: 1}, rand.New(rand.NewPCG(1, 1)))
	assert.True(t, errors.Is(err, ErrBadShape))
}

func TestEqual(t *testing.T) {
	a := MustNew([][]float64{{1, 2}})
	assert.True(t, a.Equal(MustNew([][]float64{{1, 2.0000001}}), 1e-6))
	assert.False(t, a.Equal(MustNew([][]float64{{1, 2.1}}), 1e-6))
	assert.False(t, a.Equal(MustNew([][]float64{{1}, {2}}), 1))
	assert.False(t, a.Equal(nil, 1))
}

func TestShape(t *testing.T) {
	s := Shape{Rows: 2, Cols: 3}
	assert.Equal(t, 6, s.NumElements())
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, s.T())
	assert.Equal(t, "[2×3]", s.String())
	assert.NoError(t, s.Validate())
	assert.True(t, errors.Is(Shape{Rows: -1, Cols: 3}.Validate(), ErrBadShape))
}

func BenchmarkDot(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	x, _ := Populate(Shape{Rows: 256, Cols: 128}, rng)
	y, _ := Populate(Shape{Rows: 128, Cols: 64}, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Dot(y)
	}
}
