package leave

import (
	"context"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

// Repository - access to leave requests held by the upstream API
type Repository interface {
	// GetByDateRange returns all requests whose span overlaps the inclusive
	// [start, end] window, in upstream order.
	GetByDateRange(ctx context.Context, start, end calendar.Date) ([]Request, error)
	Create(ctx context.Context, req CreateRequest) (Request, error)
}
