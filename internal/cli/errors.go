package cli

import "errors"

var (
	// ErrInvalidIDs is returned by validate when at least one argument is not a ULID.
	ErrInvalidIDs = errors.New("cli: invalid ULIDs")

	// ErrUnknownOutput is returned for an unsupported output or ID format.
	ErrUnknownOutput = errors.New("cli: unknown output format")

	// ErrCount is returned when the requested number of IDs is out of range.
	ErrCount = errors.New("cli: count out of range")
)
