// Package trainer drives full-batch gradient descent over a fixed number of
// iterations and samples an error metric along the way.
package trainer

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/wilson/internal/matrix"
	"github.com/born-ml/wilson/internal/nn"
)

// DefaultReportEvery is the sampling period of the error metric.
const DefaultReportEvery = 1000

// ErrInvalidIterations is returned when the iteration count is not positive.
var ErrInvalidIterations = errors.New("trainer: iterations must be > 0")

// Stepper applies the gradients left on the parameters by Backward.
type Stepper interface {
	Step() error
}

// Report is one sample of the training error.
type Report struct {
	Iteration int
	Error     float64
}

// Config captures the knobs of the training loop.
type Config struct {
	Iterations  int
	ReportEvery int          // Sampling period; DefaultReportEvery when <= 0.
	OnReport    func(Report) // Optional; receives every sampled metric.
}

// Summary describes a finished run.
type Summary struct {
	Iterations int
	Reports    int     // Number of sampled metrics.
	LastError  float64 // Most recent sampled metric.
	FinalError float64 // Metric of the last iteration.
}

// Run trains model on the full batch: every iteration is one forward pass
// over all inputs, one backward pass and one optimizer step. There is no
// convergence check; the loop always runs cfg.Iterations times.
//
// At every iteration i with i % ReportEvery == 0 the error metric (see
// ErrorMetric) is computed and handed to cfg.OnReport. Sampling has no
// effect on training.
func Run(model nn.Module, optimizer Stepper, inputs, target *matrix.Matrix, cfg Config) (Summary, error) {
	if cfg.Iterations <= 0 {
		return Summary{}, errors.Wrapf(ErrInvalidIterations, "got %d", cfg.Iterations)
	}
	if cfg.ReportEvery <= 0 {
		cfg.ReportEvery = DefaultReportEvery
	}

	summary := Summary{Iterations: cfg.Iterations}
	var outputErr *matrix.Matrix

	for i := 0; i < cfg.Iterations; i++ {
		guess, err := model.Forward(inputs)
		if err != nil {
			return summary, errors.Wrapf(err, "iteration %d", i)
		}
		outputErr, err = model.Backward(inputs, guess, target)
		if err != nil {
			return summary, errors.Wrapf(err, "iteration %d", i)
		}
		if err := optimizer.Step(); err != nil {
			return summary, errors.Wrapf(err, "iteration %d", i)
		}

		if i%cfg.ReportEvery == 0 {
			r := Report{Iteration: i, Error: ErrorMetric(outputErr)}
			summary.Reports++
			summary.LastError = r.Error
			if cfg.OnReport != nil {
				cfg.OnReport(r)
			}
		}
	}

	summary.FinalError = ErrorMetric(outputErr)
	return summary, nil
}

// ErrorMetric returns |mean| of the first row of errᵀ, that is the mean
// error of the first output across all samples.
func ErrorMetric(outputErr *matrix.Matrix) float64 {
	if outputErr == nil {
		return 0
	}
	return math.Abs(stat.Mean(outputErr.Transpose().Row(0), nil))
}
