// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import "github.com/pkg/errors"

var (
	// ErrNotTrained is returned by Predict and Save before Learn or Load.
	ErrNotTrained = errors.New("network: not trained")

	// ErrNoSamples is returned by Learn for an empty training set.
	ErrNoSamples = errors.New("network: no training samples")
)
