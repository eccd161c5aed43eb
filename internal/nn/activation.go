package nn

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Activation selects an elementwise nonlinearity together with its
// derivative.
//
// The derivative is always evaluated on the activated output y = f(x),
// never on the pre-activation sum.
type Activation int

const (
	// Sigmoid is σ(x) = 1 / (1 + e^-x), with derivative y(1 - y).
	Sigmoid Activation = iota

	// Tanh is tanh(x), with derivative 1 - y².
	Tanh
)

// DefaultActivation is used when no activation or an unknown name is given.
const DefaultActivation = Sigmoid

type activationPair struct {
	name  string
	fn    func(float64) float64
	prime func(float64) float64
}

var activations = [...]activationPair{
	Sigmoid: {name: "sigmoid", fn: sigmoid, prime: sigmoidPrime},
	Tanh:    {name: "tanh", fn: math.Tanh, prime: tanhPrime},
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// sigmoidPrime takes y = sigmoid(x).
func sigmoidPrime(y float64) float64 {
	return y * (1 - y)
}

// tanhPrime takes y = tanh(x).
func tanhPrime(y float64) float64 {
	return 1 - y*y
}

// ParseActivation maps a configuration name ("sigmoid", "tanh") to an
// Activation. Matching ignores case and surrounding space.
func ParseActivation(name string) (Activation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for a, p := range activations {
		if p.name == key {
			return Activation(a), nil
		}
	}
	return DefaultActivation, errors.Wrapf(ErrUnknownActivation, "%q", name)
}

// ResolveActivation is ParseActivation that falls back to DefaultActivation
// for empty or unknown names.
func ResolveActivation(name string) Activation {
	a, err := ParseActivation(name)
	if err != nil {
		return DefaultActivation
	}
	return a
}

// Valid reports whether a is one of the defined activations.
func (a Activation) Valid() bool {
	return a >= 0 && int(a) < len(activations)
}

func (a Activation) pair() activationPair {
	if !a.Valid() {
		return activations[DefaultActivation]
	}
	return activations[a]
}

// Func returns the activation function.
func (a Activation) Func() func(float64) float64 {
	return a.pair().fn
}

// Prime returns the derivative, expressed on the activated output.
func (a Activation) Prime() func(float64) float64 {
	return a.pair().prime
}

// String returns the configuration name.
func (a Activation) String() string {
	return a.pair().name
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.Wrapf(ErrUnknownActivation, "value %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
