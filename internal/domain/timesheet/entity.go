package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

// Entry is one logged activity on a work date.
type Entry struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	TaskName    string          `json:"task_name"`
	Hours       decimal.Decimal `json:"hours"`
	Description *string         `json:"description,omitempty"`
}

// Day aggregates the entries logged on one work date. TotalHours comes from
// the upstream API, which is authoritative over the sum.
type Day struct {
	WorkDate   calendar.Date   `json:"work_date"`
	TotalHours decimal.Decimal `json:"total_hours"`
	Entries    []Entry         `json:"entries"`
}
