package calendar

import (
	"context"
	"time"
)

// HolidaySet holds the organization holidays of one month, keyed by the
// date's ISO string.
type HolidaySet map[string]struct{}

func (s HolidaySet) Add(d Date) {
	s[d.String()] = struct{}{}
}

func (s HolidaySet) Contains(d Date) bool {
	_, ok := s[d.String()]
	return ok
}

// HolidayRepository - source of the monthly holiday set
type HolidayRepository interface {
	GetMonth(ctx context.Context, year int, month time.Month) (HolidaySet, error)
}
