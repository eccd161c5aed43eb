package serialization

import (
	"math"

	"github.com/born-ml/wilson/internal/nn"
)

// Validate checks that s describes a loadable network:
//   - hyperParams present with hiddenNodes > 0
//   - exactly two rectangular, finite weight matrices
//   - inputWeights columns == hiddenWeights rows == hiddenNodes
//   - optional iterations / learningRate / activation in range
//   - optional labels, one per output column
func (s *State[L]) Validate() error {
	hp := s.HyperParams
	if hp == nil {
		return invalid("hyperParams", "missing")
	}
	if hp.HiddenNodes <= 0 {
		return invalid("hyperParams.hiddenNodes", "must be > 0 (got %d)", hp.HiddenNodes)
	}
	if hp.Iterations != nil && *hp.Iterations <= 0 {
		return invalid("hyperParams.iterations", "must be > 0 (got %d)", *hp.Iterations)
	}
	if lr := hp.LearningRate; lr != nil && (*lr <= 0 || math.IsNaN(*lr) || math.IsInf(*lr, 0)) {
		return invalid("hyperParams.learningRate", "must be finite and > 0 (got %v)", *lr)
	}
	if hp.Activation != "" {
		if _, err := nn.ParseActivation(hp.Activation); err != nil {
			return invalid("hyperParams.activation", "%v", err)
		}
	}

	if len(s.Weights) != 2 {
		return invalid("weights", "want 2 matrices, got %d", len(s.Weights))
	}
	inputWeights, hiddenWeights, err := s.Matrices()
	if err != nil {
		return err
	}
	if inputWeights.Cols() != hp.HiddenNodes {
		return invalid("weights[0]", "shape %v does not have hiddenNodes=%d columns", inputWeights.Shape(), hp.HiddenNodes)
	}
	if hiddenWeights.Rows() != hp.HiddenNodes {
		return invalid("weights[1]", "shape %v does not have hiddenNodes=%d rows", hiddenWeights.Shape(), hp.HiddenNodes)
	}

	if s.Labels != nil && len(s.Labels) != hiddenWeights.Cols() {
		return invalid("labels", "got %d labels for %d outputs", len(s.Labels), hiddenWeights.Cols())
	}
	return nil
}
