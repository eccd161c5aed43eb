// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/wilson/internal/config"
	"github.com/born-ml/wilson/internal/nn"
	"github.com/born-ml/wilson/internal/serialization"
)

// ErrMalformedState is returned by Load and ReadFrom for persisted text
// that cannot be restored. Nothing is changed when it is returned.
var ErrMalformedState = serialization.ErrMalformedState

// Save returns the trained state as JSON text.
func (n *Network[L]) Save() (string, error) {
	var buf bytes.Buffer
	if _, err := n.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo writes the trained state as JSON to w.
func (n *Network[L]) WriteTo(w io.Writer) (int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.model == nil {
		return 0, ErrNotTrained
	}

	state := serialization.NewState(
		n.model.InputWeights(),
		n.model.HiddenWeights(),
		n.model.Activation().String(),
		n.labels.Values(),
	)
	data, err := serialization.Marshal(state)
	if err != nil {
		return 0, err
	}
	written, err := w.Write(data)
	if err != nil {
		return int64(written), errors.Wrap(err, "save")
	}
	return int64(written), nil
}

// Load restores state produced by Save. hiddenNodes and, when present,
// iterations, learningRate and activation are merged into the
// configuration. On error the Network is left unchanged.
func (n *Network[L]) Load(text string) error {
	state, err := serialization.Unmarshal[L]([]byte(text))
	if err != nil {
		return err
	}
	return n.restore(state)
}

// ReadFrom reads one JSON state from r and restores it like Load.
func (n *Network[L]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	state, err := serialization.Decode[L](cr)
	if err != nil {
		return cr.n, err
	}
	return cr.n, n.restore(state)
}

func (n *Network[L]) restore(state *serialization.State[L]) error {
	inputWeights, hiddenWeights, err := state.Matrices()
	if err != nil {
		return err
	}

	var labels *nn.Labels[L]
	if state.Labels != nil {
		if labels, err = nn.LabelsOf(state.Labels); err != nil {
			return errors.Wrapf(ErrMalformedState, "labels: %v", err)
		}
	}

	hp := state.HyperParams
	patch := config.Patch{
		HiddenNodes:  &hp.HiddenNodes,
		Iterations:   hp.Iterations,
		LearningRate: hp.LearningRate,
	}
	if hp.Activation != "" {
		patch.Activation = &hp.Activation
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	cfg := n.cfg
	if err := cfg.Apply(patch); err != nil {
		return errors.Wrapf(ErrMalformedState, "hyperParams: %v", err)
	}
	resolved, _ := cfg.Resolve()

	model, err := nn.NewMLPFromWeights(inputWeights, hiddenWeights, resolved.Activation)
	if err != nil {
		return errors.Wrapf(ErrMalformedState, "weights: %v", err)
	}

	n.cfg = cfg
	n.model = model
	n.labels = labels

	n.logger.Debug("state loaded",
		"features", model.Features(),
		"hidden_nodes", model.HiddenNodes(),
		"outputs", model.Outputs(),
		"labels", labels.Len(),
	)
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	read, err := c.r.Read(p)
	c.n += int64(read)
	return read, err
}
