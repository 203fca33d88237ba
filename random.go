package ulid

import (
	"io"
	"time"

	"github.com/dmitrymomot/ulid/pkg/crockford"
)

// Random generates ULIDs with fresh randomness on every call and keeps no
// state. IDs sharing a millisecond have no defined order.
//
// The zero value is ready to use with crypto/rand and time.Now.
// A Random is safe for concurrent use when its entropy source is.
type Random struct {
	entropy io.Reader
	now     func() time.Time
}

// NewRandom creates a stateless generator. WithMonotonic is ignored.
func NewRandom(opts ...Option) *Random {
	return newRandom(newConfig(opts...))
}

func newRandom(cfg *config) *Random {
	return &Random{entropy: cfg.entropy, now: cfg.now}
}

// Generate returns a ULID for the current time.
func (g *Random) Generate() (string, error) {
	_, now := orDefault(nil, g.now)
	return g.GenerateAt(Timestamp(now()))
}

// GenerateTime returns a ULID for t.
func (g *Random) GenerateTime(t time.Time) (string, error) {
	return g.GenerateAt(Timestamp(t))
}

// GenerateAt returns a ULID for ms milliseconds since the Unix epoch.
func (g *Random) GenerateAt(ms int64) (string, error) {
	if err := validateMillis(ms); err != nil {
		return "", err
	}

	entropy, _ := orDefault(g.entropy, nil)
	random, err := crockford.EncodeRandom(entropy, RandomLen)
	if err != nil {
		return "", err
	}

	return encode(ms, random)
}
