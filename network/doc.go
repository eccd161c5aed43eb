// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network is a minimal trainable feedforward classifier: an input
// layer, one hidden layer and an output layer with one node per label,
// trained by full-batch backpropagation for a fixed number of iterations.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/wilson/config"
//	    "github.com/born-ml/wilson/network"
//	)
//
//	func main() {
//	    net, err := network.New[string](config.Default(), network.WithSeed(7))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
//	    targets := []string{"off", "off", "off", "on"}
//	    if err := net.Learn(inputs, targets, false); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    p, _ := net.Predict([]float64{1, 1})
//	    fmt.Println(p.Label, p.Output)
//	}
//
// # Configuration
//
// Hyperparameters come from a config.Config and may be changed between
// calls with Configure. Changes take effect on the next Learn or Predict:
//
//	net.Configure(config.Patch{
//	    HiddenNodes: config.Int(5),
//	    Activation:  config.String("tanh"),
//	})
//
// An unrecognized activation name falls back to sigmoid with a warning.
//
// # Persistence
//
// Save returns the trained weights as JSON; Load restores them into any
// Network with the same label type:
//
//	text, _ := net.Save()
//	other, _ := network.New[string](config.Default())
//	_ = other.Load(text)
//
// Save writes hiddenNodes, activation, weights and labels. Load also accepts
// iterations and learningRate.
//
// # Concurrency
//
// A Network serializes its own calls with a mutex, so it is safe for
// concurrent use. Training blocks other callers until it finishes.
package network
