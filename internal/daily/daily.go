// Package daily derives the secret of the day.
//
// Every player running --daily on the same UTC date gets the same secret
// for a given salt and range.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/guess/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Secret returns a deterministic secret for a date using HMAC(salt, YYYY-MM-DD)
// reduced into r. r must be valid.
func Secret(date time.Time, salt string, r game.Range) int {
	span := uint64(r.High-r.Low) + 1
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return r.Low + int(n%span)
}

// Session builds a game session around today's secret.
func Session(now time.Time, salt string, r game.Range) (*game.Session, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return game.NewWithSecret(Secret(now, salt, r), r)
}
