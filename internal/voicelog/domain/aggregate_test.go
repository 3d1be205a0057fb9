package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func entry(uid string, at time.Time) *VoiceLog {
	return &VoiceLog{UserUID: uid, Datetime: at}
}

func TestDistinctDays(t *testing.T) {
	loc := mustLocation(t, "Asia/Tokyo")
	logs := []*VoiceLog{
		entry("u", time.Date(2025, 3, 1, 9, 0, 0, 0, loc)),
		entry("u", time.Date(2025, 3, 1, 18, 0, 0, 0, loc)),
		entry("u", time.Date(2025, 3, 2, 9, 0, 0, 0, loc)),
	}

	assert.Equal(t, 2, DistinctDays(logs, loc))
	assert.Equal(t, 0, DistinctDays(nil, loc))
}

func TestDistinctDaysRespectsLocationBoundary(t *testing.T) {
	tokyo := mustLocation(t, "Asia/Tokyo")
	// 23:30 UTC and 01:30 UTC next day are the same Tokyo date (08:30 and
	// 10:30 JST), but different UTC dates.
	logs := []*VoiceLog{
		entry("u", time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)),
		entry("u", time.Date(2025, 3, 2, 1, 30, 0, 0, time.UTC)),
	}

	assert.Equal(t, 1, DistinctDays(logs, tokyo))
	assert.Equal(t, 2, DistinctDays(logs, time.UTC))
}

func TestLatestPerDay(t *testing.T) {
	loc := mustLocation(t, "Asia/Tokyo")
	morning := entry("u", time.Date(2025, 3, 1, 9, 0, 0, 0, loc))
	evening := entry("u", time.Date(2025, 3, 1, 18, 0, 0, 0, loc))
	nextDay := entry("u", time.Date(2025, 3, 2, 9, 0, 0, 0, loc))

	byDay := LatestPerDay([]*VoiceLog{morning, evening, nextDay}, loc)
	require.Len(t, byDay, 2)
	assert.Same(t, evening, byDay["2025-03-01"])
	assert.Same(t, nextDay, byDay["2025-03-02"])
}

func TestForDate(t *testing.T) {
	loc := mustLocation(t, "Asia/Tokyo")
	a := entry("u", time.Date(2025, 3, 1, 9, 0, 0, 0, loc))
	b := entry("u", time.Date(2025, 3, 1, 18, 0, 0, 0, loc))
	c := entry("u", time.Date(2025, 3, 2, 9, 0, 0, 0, loc))

	matched := ForDate([]*VoiceLog{a, b, c}, "2025-03-01", loc)
	require.Len(t, matched, 2)
	assert.Same(t, a, matched[0])
	assert.Same(t, b, matched[1])

	assert.Empty(t, ForDate([]*VoiceLog{a, b, c}, "2025-03-05", loc))
}

func TestSameDay(t *testing.T) {
	loc := mustLocation(t, "Asia/Tokyo")

	assert.True(t, SameDay(
		time.Date(2025, 3, 1, 0, 0, 1, 0, loc),
		time.Date(2025, 3, 1, 23, 59, 59, 0, loc),
		loc,
	))
	assert.False(t, SameDay(
		time.Date(2025, 3, 1, 23, 59, 59, 0, loc),
		time.Date(2025, 3, 2, 0, 0, 1, 0, loc),
		loc,
	))
}
