// Package nn implements the network engine: activation functions, the
// two-layer perceptron with its forward and backward passes, and the
// label/probability mapping used at prediction time.
//
// This package provides:
//   - Activation: tagged {Sigmoid, Tanh} enumeration mapped to function pairs
//   - Parameter: a named weight matrix with its last gradient
//   - MLP: input → hidden → output perceptron without biases
//   - Labels: ordered label set, one-hot targets and arg-max lookup
//   - Softmax: probability distribution over a raw output vector
package nn

import "github.com/born-ml/wilson/internal/matrix"

// Module is the interface implemented by trainable network components.
//
// Forward must be called before Backward; Backward computes gradients for
// every parameter returned by Parameters but does not apply them. Applying
// gradients is the optimizer's job.
type Module interface {
	// Forward computes the output for a batch of inputs, one sample per row.
	Forward(inputs *matrix.Matrix) (*matrix.Matrix, error)

	// Backward computes parameter gradients from the last forward pass and
	// returns the output error guess - target.
	Backward(inputs, guess, target *matrix.Matrix) (*matrix.Matrix, error)

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter
}
