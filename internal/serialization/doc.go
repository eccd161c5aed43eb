// Package serialization reads and writes the persisted network state.
//
// The state is a JSON object:
//
//	{
//	  "hyperParams": {"hiddenNodes": 3, "activation": "sigmoid"},
//	  "weights": [
//	    [[...], ...],   // inputWeights, [features][hiddenNodes]
//	    [[...], ...]    // hiddenWeights, [hiddenNodes][outputs]
//	  ],
//	  "labels": ["a", "b"]
//	}
//
// hyperParams.hiddenNodes and weights are required. Encode never writes
// iterations or learningRate; Decode accepts both when present. activation
// and labels are optional on read.
//
// Decode validates the whole document before returning it: a state that
// fails validation is never partially applied.
//
// Example usage:
//
//	// Save
//	if err := serialization.Encode(w, state); err != nil {
//	    return err
//	}
//
//	// Load
//	state, err := serialization.Decode[string](r)
//	if err != nil {
//	    return err // wraps ErrMalformedState
//	}
//	inputWeights, hiddenWeights, err := state.Matrices()
package serialization
