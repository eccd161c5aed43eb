package nn

import "github.com/pkg/errors"

var (
	// ErrUnknownActivation is returned by ParseActivation for unrecognized names.
	ErrUnknownActivation = errors.New("nn: unknown activation")

	// ErrNoForward is returned by Backward when no forward pass has run.
	ErrNoForward = errors.New("nn: backward called before forward")

	// ErrUnknownLabel is returned when a target is not part of a label set.
	ErrUnknownLabel = errors.New("nn: unknown label")

	// ErrDuplicateLabel is returned when restoring a label set with repeats.
	ErrDuplicateLabel = errors.New("nn: duplicate label")
)
