package ulid

import (
	"crypto/rand"
	"io"
	"time"
)

// Option configures a generator.
type Option func(*config)

type config struct {
	entropy   io.Reader
	now       func() time.Time
	monotonic bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		entropy:   rand.Reader,
		now:       time.Now,
		monotonic: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMonotonic selects the monotonic (true) or the stateless (false) generator.
// Defaults to true. Only New consults this option.
func WithMonotonic(monotonic bool) Option {
	return func(c *config) {
		c.monotonic = monotonic
	}
}

// WithEntropy sets the source of random bytes.
// Defaults to crypto/rand.Reader. If nil, the default is kept.
//
// Readers that are not safe for concurrent use may still back a monotonic
// generator, which serializes its reads.
func WithEntropy(r io.Reader) Option {
	return func(c *config) {
		if r != nil {
			c.entropy = r
		}
	}
}

// WithClock sets the wall clock used when no timestamp is given.
// Defaults to time.Now. If nil, the default is kept.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// orDefault fills the fields a zero-value generator leaves unset.
func orDefault(entropy io.Reader, now func() time.Time) (io.Reader, func() time.Time) {
	if entropy == nil {
		entropy = rand.Reader
	}
	if now == nil {
		now = time.Now
	}
	return entropy, now
}
