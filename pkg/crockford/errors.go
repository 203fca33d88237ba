package crockford

import "errors"

// Sentinel errors for codec operations.
var (
	// ErrRange is returned when a value cannot be represented in the requested width.
	ErrRange = errors.New("crockford: value out of range")

	// ErrInvalidCharacter is returned when input contains a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("crockford: invalid character")

	// ErrLength is returned when a counter is wider than MaxIncrementWidth.
	ErrLength = errors.New("crockford: value too long")

	// ErrOverflow is returned when incrementing a counter that is already at its maximum.
	ErrOverflow = errors.New("crockford: cannot increment, value at maximum")

	// ErrEntropy is returned when the random source cannot supply enough bytes.
	ErrEntropy = errors.New("crockford: failed to read entropy")
)
