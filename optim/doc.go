// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizer used to train wilson networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent, w = w - lr * grad
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/wilson/nn"
//	    "github.com/born-ml/wilson/optim"
//	)
//
//	func main() {
//	    model, _ := nn.NewMLP(2, 3, 2, nn.Sigmoid, rng)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    guess, _ := model.Forward(inputs)
//	    model.Backward(inputs, guess, target) // stores gradients
//	    optimizer.Step()                      // applies them
//	}
//
// Each Step replaces every parameter value with a new matrix; the old value
// is never modified.
package optim
