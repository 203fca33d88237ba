package ulid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidateTimestamp checks that v is a non-NaN number holding an integer millisecond
// value in [0, MaxTime]. Each failure wraps a distinct sentinel:
// ErrTimestampType, ErrTimestampRange or ErrTimestampNotInteger.
func ValidateTimestamp(v any) error {
	switch n := v.(type) {
	case int:
		return validateMillis(int64(n))
	case int8:
		return validateMillis(int64(n))
	case int16:
		return validateMillis(int64(n))
	case int32:
		return validateMillis(int64(n))
	case int64:
		return validateMillis(n)
	case uint:
		return validateUnsigned(uint64(n))
	case uint8:
		return validateUnsigned(uint64(n))
	case uint16:
		return validateUnsigned(uint64(n))
	case uint32:
		return validateUnsigned(uint64(n))
	case uint64:
		return validateUnsigned(n)
	case float32:
		return validateFloat(float64(n))
	case float64:
		return validateFloat(n)
	default:
		return fmt.Errorf("%w: got %T", ErrTimestampType, v)
	}
}

// ParseTimestamp reads a timestamp from text: integer milliseconds, a decimal
// number (which must still be integral) or an RFC 3339 time.
func ParseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if err := validateMillis(ms); err != nil {
			return 0, err
		}
		return ms, nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if err := validateFloat(f); err != nil {
			return 0, err
		}
		return int64(f), nil
	} else if errors.Is(err, strconv.ErrRange) {
		// e.g. "1e400"
		return 0, fmt.Errorf("%w: %s", ErrTimestampRange, s)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		ms := Timestamp(t)
		if err := validateMillis(ms); err != nil {
			return 0, err
		}
		return ms, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrTimestampType, s)
}

// Timestamp converts t to milliseconds since the Unix epoch.
func Timestamp(t time.Time) int64 {
	return t.UnixMilli()
}

func validateMillis(ms int64) error {
	if ms > MaxTime {
		return fmt.Errorf("%w: %d exceeds %d", ErrTimestampRange, ms, int64(MaxTime))
	}
	if ms < 0 {
		return fmt.Errorf("%w: %d is negative", ErrTimestampRange, ms)
	}
	return nil
}

func validateUnsigned(ms uint64) error {
	if ms > MaxTime {
		return fmt.Errorf("%w: %d exceeds %d", ErrTimestampRange, ms, int64(MaxTime))
	}
	return nil
}

func validateFloat(f float64) error {
	if math.IsNaN(f) {
		return fmt.Errorf("%w: got NaN", ErrTimestampType)
	}
	if f > MaxTime {
		return fmt.Errorf("%w: %v exceeds %d", ErrTimestampRange, f, int64(MaxTime))
	}
	if f < 0 {
		return fmt.Errorf("%w: %v is negative", ErrTimestampRange, f)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("%w: %v", ErrTimestampNotInteger, f)
	}
	return nil
}
