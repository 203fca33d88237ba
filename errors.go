package ulid

import (
	"errors"

	"github.com/dmitrymomot/ulid/pkg/crockford"
)

// Sentinel errors for generation and decoding.
var (
	// ErrTimestampType is returned when a timestamp is not a number.
	ErrTimestampType = errors.New("ulid: timestamp must be a number")

	// ErrTimestampRange is returned when a timestamp is negative or exceeds MaxTime.
	ErrTimestampRange = errors.New("ulid: timestamp out of range")

	// ErrTimestampNotInteger is returned when a timestamp has a fractional part.
	ErrTimestampNotInteger = errors.New("ulid: timestamp must be an integer")

	// ErrMalformed is returned when an ID does not have the encoded length.
	ErrMalformed = errors.New("ulid: malformed ULID")
)

// Codec errors surfaced by this package.
var (
	// ErrInvalidCharacter is returned when an ID contains a symbol outside the alphabet.
	ErrInvalidCharacter = crockford.ErrInvalidCharacter

	// ErrOverflow is returned by a monotonic generator once the random
	// component of a stalled millisecond is exhausted.
	ErrOverflow = crockford.ErrOverflow
)
