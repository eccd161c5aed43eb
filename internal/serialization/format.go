package serialization

import "github.com/born-ml/wilson/internal/matrix"

// MaxStateSize bounds the number of bytes Decode will read.
const MaxStateSize = 64 * 1024 * 1024

// HyperParams is the persisted subset of the network configuration.
type HyperParams struct {
	HiddenNodes  int      `json:"hiddenNodes"`
	Iterations   *int     `json:"iterations,omitempty"`
	LearningRate *float64 `json:"learningRate,omitempty"`
	Activation   string   `json:"activation,omitempty"`
}

// State is the persisted form of a trained network.
type State[L any] struct {
	HyperParams *HyperParams  `json:"hyperParams"`
	Weights     [][][]float64 `json:"weights"` // [inputWeights, hiddenWeights]
	Labels      []L           `json:"labels,omitempty"`
}

// NewState captures weights and labels for encoding. iterations and
// learningRate are deliberately absent.
func NewState[L any](inputWeights, hiddenWeights *matrix.Matrix, activation string, labels []L) *State[L] {
	return &State[L]{
		HyperParams: &HyperParams{
			HiddenNodes: inputWeights.Cols(),
			Activation:  activation,
		},
		Weights: [][][]float64{inputWeights.ToArray(), hiddenWeights.ToArray()},
		Labels:  labels,
	}
}

// Matrices converts the persisted weights into matrices. The state should
// have passed Validate.
func (s *State[L]) Matrices() (inputWeights, hiddenWeights *matrix.Matrix, err error) {
	inputWeights, err = matrix.New(s.Weights[0])
	if err != nil {
		return nil, nil, invalid("weights[0]", "%v", err)
	}
	hiddenWeights, err = matrix.New(s.Weights[1])
	if err != nil {
		return nil, nil, invalid("weights[1]", "%v", err)
	}
	return inputWeights, hiddenWeights, nil
}
