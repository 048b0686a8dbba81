package timesheet

import (
	"context"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

// Repository - access to timesheet data held by the upstream API
type Repository interface {
	// GetByDate returns the day's timesheet, or ErrDayNotFound when nothing
	// has been logged on it.
	GetByDate(ctx context.Context, d calendar.Date) (Day, error)
	CreateEntries(ctx context.Context, req CreateEntriesRequest) (Day, error)
}
