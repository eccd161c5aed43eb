package nn

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabels_FirstAppearanceOrder(t *testing.T) {
	l := NewLabels([]string{"a", "b", "b", "a", "c"})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())

	i, ok := l.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = l.Index("z")
	assert.False(t, ok)
}

func TestOneHot(t *testing.T) {
	targets := []string{"a", "b", "b", "a"}
	l := NewLabels(targets)

	m, err := l.OneHot(targets)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 0},
		{0, 1},
		{0, 1},
		{1, 0},
	}, m.ToArray())

	// Each column i is hot exactly for label i.
	for r, target := range targets {
		col, _ := l.Index(target)
		row := m.Row(r)
		for c, v := range row {
			if c == col {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

func TestOneHot_UnknownLabel(t *testing.T) {
	l := NewLabels([]int{1, 2})
	_, err := l.OneHot([]int{1, 3})
	assert.True(t, errors.Is(err, ErrUnknownLabel))
}

func TestLabel(t *testing.T) {
	l := NewLabels([]string{"x", "y", "z"})

	got, ok := l.Label([]float64{0.1, 0.9, 0.05})
	assert.True(t, ok)
	assert.Equal(t, "y", got)

	got, ok = l.Label([]float64{0.5, 0.2, 0.5})
	assert.True(t, ok)
	assert.Equal(t, "x", got)

	_, ok = l.Label(nil)
	assert.False(t, ok)

	_, ok = l.Label([]float64{0, 0, 0, 1})
	assert.False(t, ok, "output wider than the label set")
}

func TestLabelsOf(t *testing.T) {
	l, err := LabelsOf([]string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, l.Values())

	_, err = LabelsOf([]string{"a", "a"})
	assert.True(t, errors.Is(err, ErrDuplicateLabel))
}

func TestNilLabels(t *testing.T) {
	var l *Labels[string]
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Values())
	_, ok := l.Label([]float64{1})
	assert.False(t, ok)
}
