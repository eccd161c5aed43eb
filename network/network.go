// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/pkg/errors"

	"github.com/born-ml/wilson/internal/config"
	"github.com/born-ml/wilson/internal/matrix"
	"github.com/born-ml/wilson/internal/nn"
	"github.com/born-ml/wilson/internal/optim"
	"github.com/born-ml/wilson/internal/trainer"
)

// Network is a two-layer classifier over labels of type L.
type Network[L comparable] struct {
	mu sync.Mutex

	cfg      config.Config
	logger   *slog.Logger
	reporter func(Report)

	model  *nn.MLP
	labels *nn.Labels[L]
}

// Prediction is the result of a single forward pass.
type Prediction[L comparable] struct {
	Output        []float64 // Raw output activations, one per label.
	Probabilities []float64 // Softmax of Output.
	Label         L         // Label of the largest output.
	Labeled       bool      // False when the network has no labels (e.g. loaded without them).
}

// New creates an untrained Network. cfg must be valid.
func New[L comparable](cfg config.Config, opts ...Option) (*Network[L], error) {
	options := &options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if options.seed != nil {
		cfg.Seed = *options.seed
	}

	return &Network[L]{
		cfg:      cfg,
		logger:   options.logger,
		reporter: options.reporter,
	}, nil
}

// Config returns a copy of the current configuration.
func (n *Network[L]) Config() config.Config {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cfg
}

// Configure applies a partial configuration update. Every set field is
// validated first; on error nothing changes. The update takes effect on the
// next Learn or Predict.
func (n *Network[L]) Configure(p config.Patch) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cfg.Apply(p)
}

// Trained reports whether Predict and Save are available.
func (n *Network[L]) Trained() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.model != nil
}

// Labels returns the trained labels in output column order.
func (n *Network[L]) Labels() []L {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.labels.Values()
}

// Learn trains a fresh set of weights on inputs, one sample per row, and
// their targets. Previous weights are discarded; on error they are kept.
//
// Training runs exactly the configured number of iterations. When report
// is true the error metric sampled every 1000 iterations is logged and
// handed to the reporter.
func (n *Network[L]) Learn(inputs [][]float64, targets []L, report bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(inputs) == 0 {
		return ErrNoSamples
	}
	if len(inputs) != len(targets) {
		return errors.Wrapf(matrix.ErrShapeMismatch, "learn: %d inputs, %d targets", len(inputs), len(targets))
	}

	hp := n.resolve()

	x, err := matrix.New(inputs)
	if err != nil {
		return errors.Wrap(err, "learn: inputs")
	}
	labels := nn.NewLabels(targets)
	target, err := labels.OneHot(targets)
	if err != nil {
		return errors.Wrap(err, "learn: targets")
	}

	seed := n.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	model, err := nn.NewMLP(x.Cols(), hp.HiddenNodes, labels.Len(), hp.Activation, rng)
	if err != nil {
		return errors.Wrap(err, "learn")
	}
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: hp.LearningRate})

	tcfg := trainer.Config{Iterations: hp.Iterations}
	if report {
		tcfg.OnReport = func(r Report) {
			n.logger.Info("training progress", "iteration", r.Iteration, "error", r.Error)
			if n.reporter != nil {
				n.reporter(r)
			}
		}
	}

	n.logger.Debug("training started",
		"samples", x.Rows(),
		"features", x.Cols(),
		"labels", labels.Len(),
		"hidden_nodes", hp.HiddenNodes,
		"iterations", hp.Iterations,
		"learning_rate", hp.LearningRate,
		"activation", hp.Activation.String(),
		"seed", seed,
	)

	summary, err := trainer.Run(model, sgd, x, target, tcfg)
	if err != nil {
		return errors.Wrap(err, "learn")
	}

	n.model = model
	n.labels = labels

	n.logger.Debug("training finished", "iterations", summary.Iterations, "error", summary.FinalError)
	return nil
}

// Predict runs input through the trained network.
func (n *Network[L]) Predict(input []float64) (*Prediction[L], error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.model == nil {
		return nil, ErrNotTrained
	}
	if len(input) != n.model.Features() {
		return nil, errors.Wrapf(matrix.ErrShapeMismatch, "predict: got %d features, want %d",
			len(input), n.model.Features())
	}
	x, err := matrix.RowVector(input)
	if err != nil {
		return nil, errors.Wrap(err, "predict")
	}

	hp := n.resolve()
	n.model.SetActivation(hp.Activation)

	out, err := n.model.Forward(x)
	if err != nil {
		return nil, errors.Wrap(err, "predict")
	}

	p := &Prediction[L]{Output: out.Row(0)}
	p.Probabilities = nn.Softmax(p.Output)
	p.Label, p.Labeled = n.labels.Label(p.Output)

	n.logger.Debug("prediction", "output", p.Output, "label", p.Label, "labeled", p.Labeled)
	return p, nil
}

// resolve turns the current config into hyperparameters, warning about an
// unknown activation name. Callers hold mu.
func (n *Network[L]) resolve() config.Hyperparams {
	hp, known := n.cfg.Resolve()
	if !known {
		n.logger.Warn("unknown activation, using sigmoid", "activation", n.cfg.Activation)
	}
	return hp
}
