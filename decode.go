package ulid

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/ulid/pkg/crockford"
)

// DecodeTime returns the timestamp of id in milliseconds since the Unix epoch.
// Only the timestamp characters are checked for validity.
func DecodeTime(id string) (int64, error) {
	if len(id) != EncodedSize {
		return 0, fmt.Errorf("%w: expected %d characters, got %d", ErrMalformed, EncodedSize, len(id))
	}

	ms, err := crockford.DecodeInt(id[:TimeLen])
	if err != nil {
		return 0, err
	}
	if ms > MaxTime {
		return 0, fmt.Errorf("%w: timestamp too large: %d", ErrTimestampRange, ms)
	}

	return int64(ms), nil
}

// Time is DecodeTime returning a time.Time.
func Time(id string) (time.Time, error) {
	ms, err := DecodeTime(id)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// Validate checks the length, alphabet and timestamp range of id.
func Validate(id string) error {
	if _, err := DecodeTime(id); err != nil {
		return err
	}
	for i := TimeLen; i < len(id); i++ {
		if _, ok := crockford.Digit(id[i]); !ok {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, id[i], i)
		}
	}
	return nil
}

// Valid reports whether id is a well-formed ULID.
func Valid(id string) bool {
	return Validate(id) == nil
}
