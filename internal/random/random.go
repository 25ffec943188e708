// Package random provides the secret sources a game session draws from.
//
// Crypto is the default and reads from crypto/rand. Seeded wraps a
// math/rand generator so a given seed always produces the same sequence,
// which is what the --seed flag and tests rely on.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
)

// ErrRandomSource is returned when the underlying entropy source fails.
var ErrRandomSource = errors.New("random source unavailable")

// ErrEmptyRange is returned when low > high.
var ErrEmptyRange = errors.New("empty range")

// Crypto draws uniformly distributed integers from an entropy reader.
type Crypto struct {
	r io.Reader
}

// NewCrypto returns a source backed by crypto/rand.
func NewCrypto() *Crypto { return &Crypto{r: crand.Reader} }

// NewCryptoFrom returns a source reading entropy from r.
func NewCryptoFrom(r io.Reader) *Crypto { return &Crypto{r: r} }

// IntRange returns an integer in [low, high].
func (c *Crypto) IntRange(low, high int) (int, error) {
	var b [8]byte
	return uniform(low, high, func() (uint64, error) {
		if _, err := io.ReadFull(c.r, b[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		return binary.LittleEndian.Uint64(b[:]), nil
	})
}

// Seeded draws integers from a deterministic generator.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a deterministic source for seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns an integer in [low, high].
func (s *Seeded) IntRange(low, high int) (int, error) {
	return uniform(low, high, func() (uint64, error) { return s.rng.Uint64(), nil })
}

// uniform maps 64-bit draws from next onto [low, high] without modulo bias.
// The span is computed in uint64 so the full int range cannot overflow.
func uniform(low, high int, next func() (uint64, error)) (int, error) {
	if low > high {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, low, high)
	}
	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		// [math.MinInt64, math.MaxInt64]: every draw is in range.
		v, err := next()
		return int(v), err
	}
	// Reject draws from the biased tail so every value is equally likely.
	limit := math.MaxUint64 - math.MaxUint64%span
	for {
		v, err := next()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return low + int(v%span), nil
		}
	}
}
