package ulid

import (
	"io"
	"sync"
	"time"

	"github.com/dmitrymomot/ulid/pkg/crockford"
)

// Monotonic generates strictly increasing ULIDs.
//
// While the timestamp moves forward each ID gets fresh randomness. When the
// timestamp stalls or goes backwards the previous timestamp is kept and the
// previous random component is incremented by one, so the output still sorts
// after everything emitted before. Once the random component of a stalled
// millisecond reaches its maximum every further stalled call fails with
// ErrOverflow.
//
// The zero value is ready to use with crypto/rand and time.Now.
// A Monotonic is safe for concurrent use. Ordering is guaranteed only between
// IDs from the same instance.
type Monotonic struct {
	entropy    io.Reader
	now        func() time.Time
	lastRandom string
	lastTime   int64
	mu         sync.Mutex
	seeded     bool
}

// NewMonotonic creates a monotonic generator. WithMonotonic is ignored.
func NewMonotonic(opts ...Option) *Monotonic {
	return newMonotonic(newConfig(opts...))
}

func newMonotonic(cfg *config) *Monotonic {
	return &Monotonic{
		entropy: cfg.entropy,
		now:     cfg.now,
	}
}

// Generate returns a ULID for the current time.
func (g *Monotonic) Generate() (string, error) {
	_, now := orDefault(nil, g.now)
	return g.GenerateAt(Timestamp(now()))
}

// GenerateTime returns a ULID for t.
func (g *Monotonic) GenerateTime(t time.Time) (string, error) {
	return g.GenerateAt(Timestamp(t))
}

// GenerateAt returns a ULID for ms milliseconds since the Unix epoch.
func (g *Monotonic) GenerateAt(ms int64) (string, error) {
	if err := validateMillis(ms); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seeded || ms > g.lastTime {
		entropy, _ := orDefault(g.entropy, nil)
		random, err := crockford.EncodeRandom(entropy, RandomLen)
		if err != nil {
			return "", err
		}
		g.lastTime, g.lastRandom, g.seeded = ms, random, true
	} else {
		random, err := crockford.Increment(g.lastRandom)
		if err != nil {
			return "", err
		}
		g.lastRandom = random
	}

	return encode(g.lastTime, g.lastRandom)
}

func encode(ms int64, random string) (string, error) {
	ts, err := crockford.EncodeInt(uint64(ms), TimeLen)
	if err != nil {
		return "", err
	}
	return ts + random, nil
}
