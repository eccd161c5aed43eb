package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/wilson/internal/matrix"
)

// Labels is the ordered set of class labels a network was trained on.
// Label i corresponds to output column i.
type Labels[L comparable] struct {
	values []L
	index  map[L]int
}

// NewLabels collects the distinct labels of targets in order of first
// appearance.
func NewLabels[L comparable](targets []L) *Labels[L] {
	l := &Labels[L]{index: make(map[L]int)}
	for _, t := range targets {
		if _, ok := l.index[t]; ok {
			continue
		}
		l.index[t] = len(l.values)
		l.values = append(l.values, t)
	}
	return l
}

// LabelsOf restores a label set from its ordered values, as persisted.
// Values must be distinct.
func LabelsOf[L comparable](values []L) (*Labels[L], error) {
	l := NewLabels(values)
	if l.Len() != len(values) {
		return nil, errors.Wrapf(ErrDuplicateLabel, "%d values, %d distinct", len(values), l.Len())
	}
	return l, nil
}

// Len returns the number of labels.
func (l *Labels[L]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.values)
}

// Values returns a copy of the labels in column order.
func (l *Labels[L]) Values() []L {
	if l == nil {
		return nil
	}
	out := make([]L, len(l.values))
	copy(out, l.values)
	return out
}

// Index returns the output column of label v.
func (l *Labels[L]) Index(v L) (int, bool) {
	if l == nil {
		return 0, false
	}
	i, ok := l.index[v]
	return i, ok
}

// OneHot builds the [len(targets), Len()] target matrix: row r has a single
// 1 in the column of targets[r].
func (l *Labels[L]) OneHot(targets []L) (*matrix.Matrix, error) {
	data := make([]float64, len(targets)*l.Len())
	for r, t := range targets {
		c, ok := l.Index(t)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownLabel, "target %d: %v", r, t)
		}
		data[r*l.Len()+c] = 1
	}
	return matrix.FromSlice(data, matrix.Shape{Rows: len(targets), Cols: l.Len()})
}

// Label returns the label of the largest output, preferring the lowest
// index on ties. ok is false when output is empty or wider than the label
// set.
func (l *Labels[L]) Label(output []float64) (label L, ok bool) {
	i := ArgMax(output)
	if i < 0 || i >= l.Len() {
		return label, false
	}
	return l.values[i], true
}
