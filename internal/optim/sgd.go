package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/wilson/internal/matrix"
	"github.com/born-ml/wilson/internal/nn"
)

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.1

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// The update builds a new matrix and swaps it into the parameter; the old
// weights are never written.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//	optimizer.Step()
type SGD struct {
	params []*nn.Parameter
	lr     float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.1)
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step performs a single optimization step.
//
// All updated values are computed before any parameter is replaced, so a
// shape error leaves every parameter unchanged.
func (s *SGD) Step() error {
	updated := make([]*nn.Parameter, 0, len(s.params))
	values := make([]*matrix.Matrix, 0, len(s.params))

	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			// Parameter didn't participate in the backward pass.
			continue
		}
		value, err := param.Value().Sub(grad.Scale(s.lr))
		if err != nil {
			return errors.Wrapf(err, "sgd: update %s", param.Name())
		}
		updated = append(updated, param)
		values = append(values, value)
	}

	for i, param := range updated {
		param.Set(values[i])
	}
	return nil
}

// ZeroGrad clears the gradients of all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR sets the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
