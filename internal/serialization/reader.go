package serialization

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Decode reads one JSON document from r and validates it. Reads beyond
// MaxStateSize bytes are rejected.
func Decode[L any](r io.Reader) (*State[L], error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxStateSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "serialization: read state")
	}
	if len(data) > MaxStateSize {
		return nil, invalid("$", "state exceeds %d bytes", MaxStateSize)
	}
	return Unmarshal[L](data)
}

// Unmarshal parses and validates the JSON text in data.
func Unmarshal[L any](data []byte) (*State[L], error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, invalid("$", "empty document")
	}
	var s State[L]
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(ErrMalformedState, "parse: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
