// Package crockford implements the fixed-width Crockford Base32 arithmetic used
// by ULIDs.
//
// The alphabet is 0123456789ABCDEFGHJKMNPQRSTVWXYZ. It omits I, L, O and U so
// encoded values cannot be misread. Digits are written most significant first,
// so string order matches numeric order for strings of equal width.
//
// # Encoding
//
//	s, err := crockford.EncodeInt(1469918176385, 10) // "01ARYZ6S41"
//	r, err := crockford.EncodeRandom(rand.Reader, 16)
//
// # Decoding
//
//	v, err := crockford.DecodeInt("01ARYZ6S41") // 1469918176385
//
// # Increment
//
// Increment treats a string as a fixed-width counter:
//
//	next, err := crockford.Increment("000000000000000Z") // "0000000000000010"
//
// Incrementing the largest value of a width fails with [ErrOverflow] instead of
// growing the string.
//
// # Error Handling
//
//   - [ErrRange] — value does not fit the requested width
//   - [ErrInvalidCharacter] — input contains a symbol outside the alphabet
//   - [ErrLength] — counter is wider than [MaxIncrementWidth]
//   - [ErrOverflow] — counter is already at its maximum
//   - [ErrEntropy] — the random source failed
package crockford
