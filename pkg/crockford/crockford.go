package crockford

import (
	"fmt"
	"io"
)

// Alphabet is Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	base = uint64(len(Alphabet))

	// MaxIntWidth is the widest string DecodeInt accepts. 12 digits hold 60 bits.
	MaxIntWidth = 12

	// MaxIncrementWidth is the widest counter Increment accepts (80 bits).
	MaxIncrementWidth = 16

	invalid = 0xFF
)

// dec maps an ASCII byte to its digit value, or invalid.
var dec = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// EncodeInt encodes value as exactly width digits, most significant first,
// padded with leading zeros. Values that need more than width digits fail with
// ErrRange rather than being truncated.
func EncodeInt(value uint64, width int) (string, error) {
	if width < 0 {
		return "", fmt.Errorf("%w: negative width %d", ErrRange, width)
	}

	out := make([]byte, width)
	v := value
	for i := width - 1; i >= 0; i-- {
		out[i] = Alphabet[v%base]
		v /= base
	}
	if v != 0 {
		return "", fmt.Errorf("%w: %d does not fit in %d digits", ErrRange, value, width)
	}

	return string(out), nil
}

// EncodeRandom returns length characters, one per byte read from r.
// Each byte b maps to index floor(b*32/255); the single value that lands on 32
// is clamped to the last symbol.
func EncodeRandom(r io.Reader, length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrRange, length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	for i, b := range buf {
		idx := int(b) * len(Alphabet) / 0xFF
		if idx >= len(Alphabet) {
			idx = len(Alphabet) - 1
		}
		buf[i] = Alphabet[idx]
	}

	return string(buf), nil
}

// DecodeInt reads s most significant digit first.
func DecodeInt(s string) (uint64, error) {
	if len(s) > MaxIntWidth {
		return 0, fmt.Errorf("%w: %d digits exceed the %d digit limit", ErrRange, len(s), MaxIntWidth)
	}

	var sum uint64
	for i := 0; i < len(s); i++ {
		d := dec[s[i]]
		if d == invalid {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		sum = sum*base + uint64(d)
	}

	return sum, nil
}

// Increment adds one to s, carrying from the last character towards the first.
// The width never changes: if every digit is already the last symbol the call
// fails with ErrOverflow.
func Increment(s string) (string, error) {
	if len(s) > MaxIncrementWidth {
		return "", fmt.Errorf("%w: %d characters, max %d", ErrLength, len(s), MaxIncrementWidth)
	}
	if i, ok := firstInvalid(s); ok {
		return "", fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
	}

	out := []byte(s)
	for i := len(out) - 1; i >= 0; i-- {
		d := dec[out[i]]
		if int(d) < len(Alphabet)-1 {
			out[i] = Alphabet[d+1]
			return string(out), nil
		}
		out[i] = Alphabet[0]
	}

	return "", fmt.Errorf("%w: %q", ErrOverflow, s)
}

// Valid reports whether every character of s belongs to the alphabet.
func Valid(s string) bool {
	_, bad := firstInvalid(s)
	return !bad
}

// Digit returns the value of a single alphabet symbol.
func Digit(c byte) (byte, bool) {
	d := dec[c]
	return d, d != invalid
}

func firstInvalid(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if dec[s[i]] == invalid {
			return i, true
		}
	}
	return 0, false
}
