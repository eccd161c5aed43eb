// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"log/slog"

	"github.com/born-ml/wilson/internal/trainer"
)

// Report is one sampled training error, as passed to a reporter.
type Report = trainer.Report

// Option configures a Network.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	reporter func(Report)
	seed     *uint64
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReporter registers fn to receive every sampled training error when
// Learn is called with report set.
func WithReporter(fn func(Report)) Option {
	return func(o *options) {
		o.reporter = fn
	}
}

// WithSeed fixes the weight initialization seed, overriding config.Seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}
