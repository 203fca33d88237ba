package ulid

import (
	"time"

	"github.com/dmitrymomot/ulid/pkg/crockford"
)

// Encoding is the Crockford Base32 alphabet ULIDs are written in.
const Encoding = crockford.Alphabet

const (
	// EncodedSize is the length of a text encoded ULID.
	EncodedSize = TimeLen + RandomLen

	// TimeLen is the number of characters holding the 48-bit timestamp.
	TimeLen = 10

	// RandomLen is the number of characters holding the 80-bit random component.
	RandomLen = 16

	// MaxTime is the largest timestamp a ULID can carry (2^48 - 1 ms).
	MaxTime = 1<<48 - 1
)

// Generator produces ULID strings.
//
// GenerateAt takes an explicit timestamp in milliseconds since the Unix epoch;
// zero is a valid timestamp and is never replaced by the current time.
type Generator interface {
	Generate() (string, error)
	GenerateAt(ms int64) (string, error)
	GenerateTime(t time.Time) (string, error)
}

// New returns a generator configured by opts.
// Generators are monotonic unless WithMonotonic(false) is passed.
//
// Example:
//
//	gen := ulid.New()
//	id, err := gen.Generate()
//
//	fast := ulid.New(ulid.WithMonotonic(false))
//	id, err = fast.GenerateAt(1469918176385)
func New(opts ...Option) Generator {
	cfg := newConfig(opts...)
	if !cfg.monotonic {
		return newRandom(cfg)
	}
	return newMonotonic(cfg)
}

var defaultGenerator = NewMonotonic()

// Make returns a ULID for the current time from a process-wide monotonic
// generator. It panics if the system random source fails or the random
// component of a single millisecond is exhausted.
func Make() string {
	return Must(defaultGenerator.Generate())
}

// Must panics if err is non-nil and returns id otherwise.
//
//	id := ulid.Must(gen.GenerateAt(ms))
func Must(id string, err error) string {
	if err != nil {
		panic(err)
	}
	return id
}
