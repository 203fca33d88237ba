// Package ulid generates and decodes ULIDs (Universally Unique Lexicographically
// Sortable Identifiers).
//
// A ULID is 128 bits written as 26 Crockford Base32 characters: 10 characters
// for a 48-bit millisecond timestamp followed by 16 characters for 80 bits of
// randomness. Because both parts are written most significant digit first, a
// plain string comparison orders ULIDs by time.
//
//	01ARYZ6S41TSV4RRFFQ69G5FAV
//	|--------||--------------|
//	timestamp    randomness
//
// # Generators
//
// New returns a monotonic generator by default:
//
//	gen := ulid.New()
//	id, err := gen.Generate()               // current time
//	id, err = gen.GenerateAt(1469918176385) // explicit milliseconds
//
// A monotonic generator never emits an ID that sorts at or before a previous
// one, even when its clock is frozen or moves backwards. Within a stalled
// millisecond it reuses the last timestamp and increments the last random
// component by one. Exhausting the 80-bit random space of a single
// millisecond fails with [ErrOverflow] rather than wrapping around.
//
// The stateless generator draws fresh randomness on every call and gives no
// ordering guarantee between IDs of the same millisecond:
//
//	gen := ulid.New(ulid.WithMonotonic(false))
//
// Both read randomness from crypto/rand unless [WithEntropy] says otherwise,
// and read the time from time.Now unless [WithClock] says otherwise:
//
//	gen := ulid.New(
//	    ulid.WithEntropy(reader),
//	    ulid.WithClock(func() time.Time { return frozen }),
//	)
//
// For one-off IDs, [Make] uses a shared monotonic generator:
//
//	id := ulid.Make()
//
// # Decoding
//
//	ms, err := ulid.DecodeTime("01ARYZ6S41TSV4RRFFQ69G5FAV") // 1469918176385
//	t, err := ulid.Time(id)
//	err = ulid.Validate(id)
//	b, err := ulid.ToBytes(id) // [16]byte, e.g. for uuid.UUID(b)
//
// # Timestamps
//
// Timestamps are integer milliseconds in [0, MaxTime]. [ValidateTimestamp]
// checks arbitrary numeric values and [ParseTimestamp] reads them from text.
//
// # Error Handling
//
//   - [ErrTimestampType] — timestamp is not a number
//   - [ErrTimestampRange] — timestamp is negative or above MaxTime
//   - [ErrTimestampNotInteger] — timestamp has a fractional part
//   - [ErrMalformed] — ID has the wrong length
//   - [ErrInvalidCharacter] — ID contains a symbol outside the alphabet
//   - [ErrOverflow] — monotonic random component exhausted
//
// Use [errors.Is] to check:
//
//	if _, err := ulid.DecodeTime(s); errors.Is(err, ulid.ErrMalformed) {
//	    // wrong length
//	}
package ulid
