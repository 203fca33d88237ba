package ulid_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/ulid"
	"github.com/dmitrymomot/ulid/pkg/crockford"
)

func TestMonotonic(t *testing.T) {
	t.Parallel()

	t.Run("stalled and regressing timestamps increment randomness", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic(ulid.WithEntropy(constReader(0)))

		var got []string
		for _, ms := range []int64{1469918176385, 1469918176385, 1469918176000, 1469918176385} {
			id, err := gen.GenerateAt(ms)
			require.NoError(t, err)
			got = append(got, id)
		}

		assert.Equal(t, []string{
			"01ARYZ6S410000000000000000",
			"01ARYZ6S410000000000000001",
			"01ARYZ6S410000000000000002",
			"01ARYZ6S410000000000000003",
		}, got)
	})

	t.Run("forward progress draws fresh randomness", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic(ulid.WithEntropy(constReader(0)))

		first, err := gen.GenerateAt(1000)
		require.NoError(t, err)
		_, err = gen.GenerateAt(1000)
		require.NoError(t, err)
		next, err := gen.GenerateAt(1001)
		require.NoError(t, err)

		// 1000 = 31*32 + 8
		assert.Equal(t, "00000000Z8"+"0000000000000000", first)
		assert.Equal(t, "00000000Z9"+"0000000000000000", next)
	})

	t.Run("output strictly increases for any timestamp order", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic()
		rng := rand.New(rand.NewPCG(1, 2))

		prev := ""
		for range 5000 {
			ms := 1_700_000_000_000 + rng.Int64N(50) - 25
			id, err := gen.GenerateAt(ms)
			require.NoError(t, err)
			require.Len(t, id, ulid.EncodedSize)
			require.Regexp(t, validULID, id)
			require.Greater(t, id, prev)
			prev = id
		}
	})

	t.Run("timestamp never moves backwards", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic()

		_, err := gen.GenerateAt(5000)
		require.NoError(t, err)
		id, err := gen.GenerateAt(10)
		require.NoError(t, err)

		ms, err := ulid.DecodeTime(id)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), ms)
	})

	t.Run("zero is a valid first timestamp", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic(ulid.WithEntropy(constReader(0)))

		id, err := gen.GenerateAt(0)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("0", ulid.EncodedSize), id)

		id, err = gen.GenerateAt(0)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("0", ulid.EncodedSize-1)+"1", id)
	})

	t.Run("exhausted random component overflows", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic(ulid.WithEntropy(constReader(0xFF)))

		id, err := gen.GenerateAt(42)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(id, strings.Repeat("Z", ulid.RandomLen)))

		_, err = gen.GenerateAt(42)
		require.ErrorIs(t, err, ulid.ErrOverflow)
		require.ErrorIs(t, err, crockford.ErrOverflow)

		// Still fatal for the stalled millisecond.
		_, err = gen.GenerateAt(41)
		require.ErrorIs(t, err, ulid.ErrOverflow)

		// Forward progress recovers.
		id, err = gen.GenerateAt(43)
		require.NoError(t, err)
		ms, err := ulid.DecodeTime(id)
		require.NoError(t, err)
		assert.Equal(t, int64(43), ms)
	})

	t.Run("rejects invalid timestamps without touching state", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic(ulid.WithEntropy(constReader(0)))

		_, err := gen.GenerateAt(-1)
		require.ErrorIs(t, err, ulid.ErrTimestampRange)
		_, err = gen.GenerateAt(ulid.MaxTime + 1)
		require.ErrorIs(t, err, ulid.ErrTimestampRange)

		id, err := gen.GenerateAt(7)
		require.NoError(t, err)
		assert.Equal(t, "0000000007"+strings.Repeat("0", ulid.RandomLen), id)
	})

	t.Run("propagates entropy failures", func(t *testing.T) {
		t.Parallel()

		gen := ulid.NewMonotonic(ulid.WithEntropy(errReader{}))

		_, err := gen.GenerateAt(1)
		require.ErrorIs(t, err, crockford.ErrEntropy)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var gen ulid.Monotonic

		first, err := gen.GenerateAt(1469918176385)
		require.NoError(t, err)
		require.Regexp(t, validULID, first)

		second, err := gen.GenerateAt(1469918176385)
		require.NoError(t, err)
		assert.Greater(t, second, first)

		before := time.Now().UnixMilli()
		id, err := gen.Generate()
		require.NoError(t, err)
		ms, err := ulid.DecodeTime(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ms, before)
	})

	t.Run("uses injected clock", func(t *testing.T) {
		t.Parallel()

		frozen := time.UnixMilli(1469918176385)
		gen := ulid.NewMonotonic(
			ulid.WithEntropy(constReader(0)),
			ulid.WithClock(func() time.Time { return frozen }),
		)

		a, err := gen.Generate()
		require.NoError(t, err)
		b, err := gen.Generate()
		require.NoError(t, err)
		c, err := gen.GenerateTime(frozen.Add(-time.Second))
		require.NoError(t, err)

		assert.Equal(t, "01ARYZ6S410000000000000000", a)
		assert.Equal(t, "01ARYZ6S410000000000000001", b)
		assert.Equal(t, "01ARYZ6S410000000000000002", c)
	})

	t.Run("concurrent callers get unique ordered IDs", func(t *testing.T) {
		t.Parallel()

		const goroutines = 50
		const perGoroutine = 200

		frozen := time.UnixMilli(1_700_000_000_000)
		gen := ulid.NewMonotonic(ulid.WithClock(func() time.Time { return frozen }))

		var mu sync.Mutex
		all := make([]string, 0, goroutines*perGoroutine)

		var g errgroup.Group
		for range goroutines {
			g.Go(func() error {
				local := make([]string, 0, perGoroutine)
				for range perGoroutine {
					id, err := gen.Generate()
					if err != nil {
						return err
					}
					local = append(local, id)
				}
				// Each goroutine observes its own IDs in increasing order.
				if !slices.IsSorted(local) {
					t.Errorf("goroutine observed out-of-order IDs")
				}
				mu.Lock()
				all = append(all, local...)
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		slices.Sort(all)
		assert.Len(t, slices.Compact(all), goroutines*perGoroutine)
	})
}
