package ulid

import (
	"encoding/binary"

	"github.com/dmitrymomot/ulid/pkg/crockford"
)

// ToBytes returns the 128-bit big-endian form of id: 6 bytes of timestamp
// followed by 10 bytes of randomness.
func ToBytes(id string) ([16]byte, error) {
	var out [16]byte
	if err := Validate(id); err != nil {
		return out, err
	}

	// 26 digits carry 130 bits; Validate guarantees the top two are zero.
	var hi, lo uint64
	for i := 0; i < EncodedSize; i++ {
		d, _ := crockford.Digit(id[i])
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(d)
	}

	binary.BigEndian.PutUint64(out[:8], hi)
	binary.BigEndian.PutUint64(out[8:], lo)
	return out, nil
}

// FromBytes encodes a 128-bit big-endian value as a ULID string.
func FromBytes(b [16]byte) string {
	hi := binary.BigEndian.Uint64(b[:8])
	lo := binary.BigEndian.Uint64(b[8:])

	var out [EncodedSize]byte
	for i := EncodedSize - 1; i >= 0; i-- {
		out[i] = Encoding[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
