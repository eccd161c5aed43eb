// Package config holds the network hyperparameters: defaults, validation,
// typed partial updates and YAML loading.
package config

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/wilson/internal/nn"
)

// Defaults.
const (
	DefaultHiddenNodes  = 3
	DefaultIterations   = 10000
	DefaultLearningRate = 0.1
	DefaultActivation   = "sigmoid"
)

// ErrInvalidConfig is returned for out-of-range hyperparameters.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config captures the raw hyperparameters of a network.
//
// Activation is kept as the configured name and resolved on use, so an
// unknown name falls back to sigmoid instead of failing.
type Config struct {
	HiddenNodes  int     `yaml:"hidden_nodes"`
	Iterations   int     `yaml:"iterations"`
	LearningRate float64 `yaml:"learning_rate"`
	Activation   string  `yaml:"activation"`
	Seed         uint64  `yaml:"seed"` // Weight initialization seed; 0 draws a random one.
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	HiddenNodes  *int
	Iterations   *int
	LearningRate *float64
	Activation   *string
	Seed         *uint64
}

// Hyperparams is a Config resolved for a training or prediction call.
type Hyperparams struct {
	HiddenNodes  int
	Iterations   int
	LearningRate float64
	Activation   nn.Activation
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		HiddenNodes:  DefaultHiddenNodes,
		Iterations:   DefaultIterations,
		LearningRate: DefaultLearningRate,
		Activation:   DefaultActivation,
	}
}

// Load reads and validates a Config from a YAML file. Keys missing from the
// file keep their defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse reads and validates a Config from YAML. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate verifies the config is runnable.
func (c Config) Validate() error {
	if err := validHiddenNodes(c.HiddenNodes); err != nil {
		return err
	}
	if err := validIterations(c.Iterations); err != nil {
		return err
	}
	return validLearningRate(c.LearningRate)
}

// Apply merges p into c. Every set field is validated first; on error c is
// left unchanged.
func (c *Config) Apply(p Patch) error {
	next := *c
	if p.HiddenNodes != nil {
		if err := validHiddenNodes(*p.HiddenNodes); err != nil {
			return err
		}
		next.HiddenNodes = *p.HiddenNodes
	}
	if p.Iterations != nil {
		if err := validIterations(*p.Iterations); err != nil {
			return err
		}
		next.Iterations = *p.Iterations
	}
	if p.LearningRate != nil {
		if err := validLearningRate(*p.LearningRate); err != nil {
			return err
		}
		next.LearningRate = *p.LearningRate
	}
	if p.Activation != nil {
		next.Activation = *p.Activation
	}
	if p.Seed != nil {
		next.Seed = *p.Seed
	}
	*c = next
	return nil
}

// Resolve turns c into Hyperparams. known is false when the activation name
// was not recognized and sigmoid was substituted.
func (c Config) Resolve() (hp Hyperparams, known bool) {
	act, err := nn.ParseActivation(c.Activation)
	return Hyperparams{
		HiddenNodes:  c.HiddenNodes,
		Iterations:   c.Iterations,
		LearningRate: c.LearningRate,
		Activation:   act,
	}, err == nil
}

func validHiddenNodes(n int) error {
	if n <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "hidden_nodes must be > 0 (got %d)", n)
	}
	return nil
}

func validIterations(n int) error {
	if n <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "iterations must be > 0 (got %d)", n)
	}
	return nil
}

func validLearningRate(lr float64) error {
	if lr <= 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning_rate must be finite and > 0 (got %v)", lr)
	}
	return nil
}
