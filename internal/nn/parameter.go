package nn

import "github.com/born-ml/wilson/internal/matrix"

// Parameter is a named trainable weight matrix.
//
// The value is never written in place: an update builds a new matrix and
// Set swaps it in. Grad holds the gradient of the last backward pass.
type Parameter struct {
	name  string
	value *matrix.Matrix
	grad  *matrix.Matrix
}

// NewParameter creates a trainable parameter.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current weights.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Set replaces the current weights.
func (p *Parameter) Set(value *matrix.Matrix) {
	p.value = value
}

// Grad returns the gradient, or nil before the first backward pass.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// SetGrad sets the gradient.
func (p *Parameter) SetGrad(grad *matrix.Matrix) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
