// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the building blocks of a wilson network.
//
// # Overview
//
// This package contains:
//   - MLP: two-layer perceptron without biases
//   - Activations: Sigmoid, Tanh
//   - Labels: one-hot encoding of targets and arg-max decoding of outputs
//   - Utilities: Module interface, Parameter, Softmax, SquaredError
//
// Most programs should use package network, which wires these together.
// Use nn directly to drive training by hand:
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/wilson/matrix"
//	    "github.com/born-ml/wilson/nn"
//	    "github.com/born-ml/wilson/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(1, 1))
//	    model, _ := nn.NewMLP(2, 3, 2, nn.Sigmoid, rng)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
//
//	    for i := 0; i < 1000; i++ {
//	        guess, _ := model.Forward(inputs)
//	        _, _ = model.Backward(inputs, guess, target)
//	        _ = optimizer.Step()
//	    }
//	}
//
// # Activations
//
// Both layers share one activation. Derivatives are expressed in terms of
// the activated output y:
//
//	sigmoid'(y) = y * (1 - y)
//	tanh'(y)    = 1 - y²
//
// # Labels
//
// Labels are collected in order of first appearance; label i owns output
// column i:
//
//	labels := nn.NewLabels([]string{"b", "a", "b"}) // [b a]
//	target, _ := labels.OneHot([]string{"b", "a", "b"})
//	label, ok := labels.Label([]float64{0.2, 0.9}) // "a", true
package nn
