package binding

import "errors"

// Builder errors.
var (
	// ErrMissingChord is returned by Build when no chord was supplied.
	ErrMissingChord = errors.New("binding has no chord")

	// ErrMissingAction is returned by Build when no action was supplied.
	ErrMissingAction = errors.New("binding has no action")
)

// Serialization errors.
var (
	// ErrInvalidFormat indicates structurally wrong persisted data.
	ErrInvalidFormat = errors.New("invalid bindings document")

	// ErrUnsupportedVersion indicates a schema version mismatch.
	ErrUnsupportedVersion = errors.New("unsupported bindings schema version")

	// ErrMissingField indicates a record without a required field.
	ErrMissingField = errors.New("bindings record is missing a required field")
)
