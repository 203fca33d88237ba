package ulid_test

import (
	"errors"
	"regexp"
)

// validULID matches 26 Crockford Base32 characters with a 48-bit timestamp.
var validULID = regexp.MustCompile(`^[0-7][0-9A-HJKMNP-TV-Z]{25}$`)

// constReader fills every read with the same byte.
type constReader byte

func (r constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

// errReader always fails.
type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}
