// Package optim implements the weight update applied after each backward
// pass.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for i := 0; i < iterations; i++ {
//	    guess, _ := model.Forward(inputs)
//	    _, _ = model.Backward(inputs, guess, target)
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	}
package optim

// Optimizer is the base interface for optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply stored gradients to the parameters
//   - ZeroGrad: Clear gradients before the next iteration
//   - GetLR / SetLR: Read and change the learning rate
type Optimizer interface {
	// Step applies the gradients of the last backward pass.
	// Parameters without a gradient are skipped.
	Step() error

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR changes the learning rate used by later steps.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
