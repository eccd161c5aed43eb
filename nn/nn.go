// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/wilson/internal/matrix"
	"github.com/born-ml/wilson/internal/nn"
)

// Module interface defines the forward/backward contract of a trainable model.
type Module = nn.Module

// Parameter represents a trainable weight matrix and its gradient.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return nn.NewParameter(name, value)
}

// Errors

var (
	// ErrUnknownActivation is returned by ParseActivation for unrecognized names.
	ErrUnknownActivation = nn.ErrUnknownActivation

	// ErrNoForward is returned by Backward when no forward pass has run.
	ErrNoForward = nn.ErrNoForward

	// ErrUnknownLabel is returned when a target is not part of a label set.
	ErrUnknownLabel = nn.ErrUnknownLabel

	// ErrDuplicateLabel is returned when restoring a label set with repeats.
	ErrDuplicateLabel = nn.ErrDuplicateLabel
)

// Activations

// Activation selects the nonlinearity of both layers.
type Activation = nn.Activation

// Supported activations.
const (
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
)

// ParseActivation maps a name ("sigmoid", "tanh") to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// ResolveActivation is ParseActivation that falls back to Sigmoid.
func ResolveActivation(name string) Activation {
	return nn.ResolveActivation(name)
}

// Layers

// MLP is a two-layer perceptron without biases.
type MLP = nn.MLP

// NewMLP creates a perceptron with standard-normal weights drawn from rng.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 1))
//	model, err := nn.NewMLP(4, 3, 2, nn.Sigmoid, rng) // 4 features, 3 hidden, 2 outputs
func NewMLP(features, hiddenNodes, outputs int, activation Activation, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(features, hiddenNodes, outputs, activation, rng)
}

// NewMLPFromWeights creates a perceptron around existing weights.
func NewMLPFromWeights(inputWeights, hiddenWeights *matrix.Matrix, activation Activation) (*MLP, error) {
	return nn.NewMLPFromWeights(inputWeights, hiddenWeights, activation)
}

// RandomWeights returns a [fanIn, fanOut] matrix of standard-normal samples.
func RandomWeights(fanIn, fanOut int, rng *rand.Rand) (*matrix.Matrix, error) {
	return nn.RandomWeights(fanIn, fanOut, rng)
}

// Labels

// Labels is the ordered set of class labels, one per output column.
type Labels[L comparable] = nn.Labels[L]

// NewLabels collects the distinct labels of targets in order of first appearance.
func NewLabels[L comparable](targets []L) *Labels[L] {
	return nn.NewLabels(targets)
}

// LabelsOf restores a label set from distinct ordered values.
func LabelsOf[L comparable](values []L) (*Labels[L], error) {
	return nn.LabelsOf(values)
}

// Utilities

// Softmax normalizes v into a probability distribution.
func Softmax(v []float64) []float64 {
	return nn.Softmax(v)
}

// ArgMax returns the index of the largest element, -1 for an empty vector.
func ArgMax(v []float64) int {
	return nn.ArgMax(v)
}

// SquaredError returns 0.5 * Σ (guess - target)².
func SquaredError(guess, target *matrix.Matrix) (float64, error) {
	return nn.SquaredError(guess, target)
}
