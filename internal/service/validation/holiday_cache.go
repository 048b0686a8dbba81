package validation

import (
	"context"
	"sync"
	"time"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

type monthKey struct {
	year  int
	month time.Month
}

// HolidayCache is a read-through cache over a HolidayRepository, keyed by
// (year, month). It exists purely to cut request volume; the upstream stays
// authoritative, and any code path that mutates a leave touching a month must
// call Invalidate for it so the next read refetches.
type HolidayCache struct {
	mu     sync.RWMutex
	repo   calendar.HolidayRepository
	months map[monthKey]calendar.HolidaySet
}

func NewHolidayCache(repo calendar.HolidayRepository) *HolidayCache {
	return &HolidayCache{
		repo:   repo,
		months: make(map[monthKey]calendar.HolidaySet),
	}
}

// GetMonth returns the cached holiday set for the month, fetching it from the
// upstream on a miss. Fetch errors are returned and never cached.
func (c *HolidayCache) GetMonth(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	key := monthKey{year: year, month: month}

	c.mu.RLock()
	set, ok := c.months[key]
	c.mu.RUnlock()
	if ok {
		return set, nil
	}

	return c.Refresh(ctx, year, month)
}

// Refresh fetches the month from the upstream unconditionally and replaces
// the cached set. Used by the background prefetch job.
func (c *HolidayCache) Refresh(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	set, err := c.repo.GetMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.months[monthKey{year: year, month: month}] = set
	c.mu.Unlock()
	return set, nil
}

// Invalidate drops the cached set for the month, if any.
func (c *HolidayCache) Invalidate(year int, month time.Month) {
	c.mu.Lock()
	delete(c.months, monthKey{year: year, month: month})
	c.mu.Unlock()
}
