package serialization

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Encode writes s to w as a single JSON document.
func Encode[L any](w io.Writer, s *State[L]) error {
	if s == nil {
		return errors.New("serialization: nil state")
	}
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "serialization: write state")
	}
	return nil
}

// Marshal returns the JSON text of s.
func Marshal[L any](s *State[L]) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "serialization: marshal state")
	}
	return data, nil
}
