package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

func TestHolidayCache_ReadThrough(t *testing.T) {
	repo := &fakeHolidayRepo{sets: map[string]calendar.HolidaySet{
		"2025-08-01": {"2025-08-18": {}},
	}}
	cache := NewHolidayCache(repo)
	ctx := context.Background()

	set, err := cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.True(t, set.Contains(calendar.NewDate(2025, time.August, 18)))
	assert.Equal(t, 1, repo.calls)

	// Second read is served from the cache.
	_, err = cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	// A different month misses.
	_, err = cache.GetMonth(ctx, 2025, time.September)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestHolidayCache_InvalidateForcesRefetch(t *testing.T) {
	repo := &fakeHolidayRepo{}
	cache := NewHolidayCache(repo)
	ctx := context.Background()

	_, err := cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	cache.Invalidate(2025, time.August)

	_, err = cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestHolidayCache_ErrorsAreNotCached(t *testing.T) {
	repo := &fakeHolidayRepo{err: errors.New("upstream down")}
	cache := NewHolidayCache(repo)
	ctx := context.Background()

	_, err := cache.GetMonth(ctx, 2025, time.August)
	require.Error(t, err)

	// Upstream recovers; the next read fetches instead of serving a
	// poisoned entry.
	repo.err = nil
	_, err = cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestHolidayCache_RefreshReplacesCachedSet(t *testing.T) {
	repo := &fakeHolidayRepo{sets: map[string]calendar.HolidaySet{}}
	cache := NewHolidayCache(repo)
	ctx := context.Background()

	set, err := cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.False(t, set.Contains(calendar.NewDate(2025, time.August, 18)))

	// Upstream gains a holiday; Refresh must pick it up despite the cache.
	repo.sets["2025-08-01"] = calendar.HolidaySet{"2025-08-18": {}}
	set, err = cache.Refresh(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.True(t, set.Contains(calendar.NewDate(2025, time.August, 18)))

	// And the refreshed set is what later reads see.
	set, err = cache.GetMonth(ctx, 2025, time.August)
	require.NoError(t, err)
	assert.True(t, set.Contains(calendar.NewDate(2025, time.August, 18)))
}
