// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config provides the public API for network hyperparameters.
//
// Example:
//
//	cfg, err := config.Load("wilson.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	net, err := network.New[string](cfg)
//
// YAML keys:
//
//	hidden_nodes: 3      # hidden layer width
//	iterations: 10000    # training iterations
//	learning_rate: 0.1
//	activation: sigmoid  # or tanh; unknown names fall back to sigmoid
//	seed: 0              # weight initialization seed, 0 = random
package config

import (
	"io"

	"github.com/born-ml/wilson/internal/config"
)

// Defaults.
const (
	DefaultHiddenNodes  = config.DefaultHiddenNodes
	DefaultIterations   = config.DefaultIterations
	DefaultLearningRate = config.DefaultLearningRate
	DefaultActivation   = config.DefaultActivation
)

// ErrInvalidConfig is returned for out-of-range hyperparameters.
var ErrInvalidConfig = config.ErrInvalidConfig

// Config captures the hyperparameters of a network.
type Config = config.Config

// Patch is a partial update applied with Network.Configure.
type Patch = config.Patch

// Default returns the default configuration.
func Default() Config {
	return config.Default()
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (Config, error) {
	return config.Load(path)
}

// Parse reads and validates a Config from YAML.
func Parse(r io.Reader) (Config, error) {
	return config.Parse(r)
}

// Patch helpers

// Int returns a pointer to v.
func Int(v int) *int { return config.Int(v) }

// Float returns a pointer to v.
func Float(v float64) *float64 { return config.Float(v) }

// String returns a pointer to v.
func String(v string) *string { return config.String(v) }

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 { return config.Uint64(v) }
