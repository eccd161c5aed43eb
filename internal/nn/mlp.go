package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/born-ml/wilson/internal/matrix"
)

// MLP is a two-layer perceptron without biases.
//
// Performs:
//
//	hidden = f(inputs · W_in)
//	output = f(hidden · W_h)
//
// where:
//   - inputs has shape [batch, features], one sample per row
//   - W_in has shape [features, hiddenNodes]
//   - W_h has shape [hiddenNodes, outputs]
//   - f is the configured activation
//
// Forward keeps the hidden activations for the following Backward call, so
// an MLP is stateful and must not be shared between concurrent callers.
//
// Example:
//
//	model, _ := nn.NewMLP(2, 3, 2, nn.Sigmoid, rng)
//	guess, _ := model.Forward(inputs)
//	errs, _ := model.Backward(inputs, guess, target)
//	optimizer.Step()
type MLP struct {
	activation    Activation
	inputWeights  *Parameter
	hiddenWeights *Parameter
	hidden        *matrix.Matrix
}

// NewMLP creates a perceptron with randomly initialized weights.
//
// Parameters:
//   - features: Number of input features
//   - hiddenNodes: Width of the hidden layer
//   - outputs: Number of output nodes (one per label)
//   - activation: Nonlinearity used by both layers
//   - rng: Source for weight initialization
func NewMLP(features, hiddenNodes, outputs int, activation Activation, rng *rand.Rand) (*MLP, error) {
	inputWeights, err := RandomWeights(features, hiddenNodes, rng)
	if err != nil {
		return nil, err
	}
	hiddenWeights, err := RandomWeights(hiddenNodes, outputs, rng)
	if err != nil {
		return nil, err
	}
	return NewMLPFromWeights(inputWeights, hiddenWeights, activation)
}

// NewMLPFromWeights creates a perceptron around existing weight matrices.
// The column count of inputWeights must equal the row count of
// hiddenWeights.
func NewMLPFromWeights(inputWeights, hiddenWeights *matrix.Matrix, activation Activation) (*MLP, error) {
	if inputWeights == nil || hiddenWeights == nil {
		return nil, errors.Wrap(matrix.ErrBadShape, "mlp: nil weights")
	}
	if inputWeights.Cols() != hiddenWeights.Rows() {
		return nil, errors.Wrapf(matrix.ErrShapeMismatch, "mlp: input weights %v do not feed hidden weights %v",
			inputWeights.Shape(), hiddenWeights.Shape())
	}
	return &MLP{
		activation:    activation,
		inputWeights:  NewParameter("inputWeights", inputWeights),
		hiddenWeights: NewParameter("hiddenWeights", hiddenWeights),
	}, nil
}

// Forward runs inputs through both layers and returns the output
// activations with shape [batch, outputs].
func (m *MLP) Forward(inputs *matrix.Matrix) (*matrix.Matrix, error) {
	f := m.activation.Func()

	sum, err := inputs.Dot(m.inputWeights.Value())
	if err != nil {
		return nil, errors.Wrap(err, "forward: input layer")
	}
	hidden := sum.Transform(f)

	sum, err = hidden.Dot(m.hiddenWeights.Value())
	if err != nil {
		return nil, errors.Wrap(err, "forward: hidden layer")
	}

	m.hidden = hidden
	return sum.Transform(f), nil
}

// Backward computes the gradient of ½·Σ(guess - target)² for both weight
// matrices and stores it on the parameters. guess must be the output of the
// most recent Forward over the same inputs.
//
// Returns the output error guess - target.
func (m *MLP) Backward(inputs, guess, target *matrix.Matrix) (*matrix.Matrix, error) {
	if m.hidden == nil {
		return nil, ErrNoForward
	}
	prime := m.activation.Prime()

	outputErr, err := guess.Sub(target)
	if err != nil {
		return nil, errors.Wrap(err, "backward: output error")
	}
	outputDelta, err := outputErr.Hadamard(guess.Transform(prime))
	if err != nil {
		return nil, errors.Wrap(err, "backward: output delta")
	}

	hiddenErr, err := outputDelta.Dot(m.hiddenWeights.Value().Transpose())
	if err != nil {
		return nil, errors.Wrap(err, "backward: hidden error")
	}
	hiddenDelta, err := hiddenErr.Hadamard(m.hidden.Transform(prime))
	if err != nil {
		return nil, errors.Wrap(err, "backward: hidden delta")
	}

	hiddenGrad, err := m.hidden.Transpose().Dot(outputDelta)
	if err != nil {
		return nil, errors.Wrap(err, "backward: hidden gradient")
	}
	inputGrad, err := inputs.Transpose().Dot(hiddenDelta)
	if err != nil {
		return nil, errors.Wrap(err, "backward: input gradient")
	}

	m.hiddenWeights.SetGrad(hiddenGrad)
	m.inputWeights.SetGrad(inputGrad)
	return outputErr, nil
}

// Parameters returns [inputWeights, hiddenWeights].
func (m *MLP) Parameters() []*Parameter {
	return []*Parameter{m.inputWeights, m.hiddenWeights}
}

// InputWeights returns the current input → hidden weights.
func (m *MLP) InputWeights() *matrix.Matrix {
	return m.inputWeights.Value()
}

// HiddenWeights returns the current hidden → output weights.
func (m *MLP) HiddenWeights() *matrix.Matrix {
	return m.hiddenWeights.Value()
}

// Hidden returns the hidden activations of the last forward pass.
func (m *MLP) Hidden() *matrix.Matrix {
	return m.hidden
}

// Activation returns the configured activation.
func (m *MLP) Activation() Activation {
	return m.activation
}

// SetActivation switches the activation used by later passes.
func (m *MLP) SetActivation(a Activation) {
	m.activation = a
}

// Features returns the number of input features.
func (m *MLP) Features() int {
	return m.inputWeights.Value().Rows()
}

// HiddenNodes returns the width of the hidden layer.
func (m *MLP) HiddenNodes() int {
	return m.inputWeights.Value().Cols()
}

// Outputs returns the number of output nodes.
func (m *MLP) Outputs() int {
	return m.hiddenWeights.Value().Cols()
}
