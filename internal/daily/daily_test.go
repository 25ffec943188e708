package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guess/internal/game"
)

func TestDateKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-10-20 05:00 at +10 is still 2026-10-19 in UTC.
	ts := time.Date(2026, 10, 20, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-19", DateKey(ts))
}

func TestSecret_StablePerDate(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	assert.Equal(t,
		Secret(morning, "salt", game.DefaultRange),
		Secret(evening, "salt", game.DefaultRange))
}

func TestSecret_InRange(t *testing.T) {
	ranges := []game.Range{game.DefaultRange, {Low: 5, High: 5}, {Low: 0, High: 1}}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, r := range ranges {
		for d := 0; d < 365; d++ {
			n := Secret(start.AddDate(0, 0, d), "s", r)
			require.True(t, r.Contains(n), "range %s day %d got %d", r, d, n)
		}
	}
}

func TestSecret_VariesAcrossDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[Secret(start.AddDate(0, 0, d), "salt", game.DefaultRange)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSession(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s, err := Session(now, "salt", game.DefaultRange)
	require.NoError(t, err)
	assert.Equal(t, Secret(now, "salt", game.DefaultRange), s.Secret())

	_, err = Session(now, "salt", game.Range{Low: 9, High: 3})
	assert.ErrorIs(t, err, game.ErrInvalidRange)
}
