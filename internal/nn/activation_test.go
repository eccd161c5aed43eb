package nn

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func TestParseActivation(t *testing.T) {
	tests := []struct {
		name string
		want Activation
	}{
		{"sigmoid", Sigmoid},
		{"tanh", Tanh},
		{" TANH ", Tanh},
		{"Sigmoid", Sigmoid},
	}
	for _, tt := range tests {
		got, err := ParseActivation(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseActivation("relu")
	assert.True(t, errors.Is(err, ErrUnknownActivation))
}

func TestResolveActivation_FallsBackToSigmoid(t *testing.T) {
	assert.Equal(t, Sigmoid, ResolveActivation(""))
	assert.Equal(t, Sigmoid, ResolveActivation("softplus"))
	assert.Equal(t, Tanh, ResolveActivation("tanh"))
}

func TestActivationText(t *testing.T) {
	text, err := Tanh.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "tanh", string(text))

	var a Activation
	require.NoError(t, a.UnmarshalText([]byte("tanh")))
	assert.Equal(t, Tanh, a)

	assert.Error(t, a.UnmarshalText([]byte("bogus")))
	assert.Equal(t, Tanh, a, "failed unmarshal must not change the value")

	_, err = Activation(7).MarshalText()
	assert.True(t, errors.Is(err, ErrUnknownActivation))
	assert.False(t, Activation(-1).Valid())
	assert.Equal(t, "sigmoid", Activation(7).String())
}

func TestActivationValues(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid.Func()(0), 1e-12)
	assert.InDelta(t, 0.7310585786, Sigmoid.Func()(1), 1e-9)
	assert.InDelta(t, 0.0, Tanh.Func()(0), 1e-12)
	assert.InDelta(t, 0.7615941559, Tanh.Func()(1), 1e-9)

	assert.Equal(t, 0.25, Sigmoid.Prime()(0.5))
	assert.Equal(t, 0.75, Tanh.Prime()(0.5), "tanh derivative is 1 - y², not y(1 - y)")
}

// The derivatives take the activated output, so Prime(Func(x)) must match
// the numerical derivative of Func at x.
func TestActivationPrimeMatchesFiniteDifference(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}

	for _, a := range []Activation{Sigmoid, Tanh} {
		t.Run(a.String(), func(t *testing.T) {
			f, prime := a.Func(), a.Prime()
			for _, x := range []float64{-4, -2.5, -1, -0.3, 0, 0.3, 1, 2.5, 4} {
				want := fd.Derivative(f, x, settings)
				got := prime(f(x))
				assert.InDelta(t, want, got, 1e-8, "x=%v", x)
			}
		})
	}
}

func TestSigmoidSaturates(t *testing.T) {
	f := Sigmoid.Func()
	assert.False(t, math.IsNaN(f(-1000)))
	assert.InDelta(t, 0.0, f(-1000), 1e-12)
	assert.InDelta(t, 1.0, f(1000), 1e-12)
}
