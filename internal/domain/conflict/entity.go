package conflict

import (
	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

// Type classifies why a proposed leave or timesheet submission clashes with
// existing data.
type Type string

const (
	// TypeFullDayLeave - a pending or approved full-day leave already covers
	// the activity date.
	TypeFullDayLeave Type = "full_day_leave"
	// TypeHalfDayHoursExceeded - existing hours exceed what a half-day leave
	// allows on the same date.
	TypeHalfDayHoursExceeded Type = "half_day_leave_hours_exceeded"
	// TypeTimesheetExists - timesheet hours are already logged inside the
	// proposed leave span.
	TypeTimesheetExists Type = "timesheet_exists"
)

// CheckResult is the outcome of an advisory conflict check. The zero value
// means no conflict; checks are best-effort and never report errors.
type CheckResult struct {
	HasConflict     bool             `json:"has_conflict"`
	Type            Type             `json:"conflict_type,omitempty"`
	Message         string           `json:"message,omitempty"`
	Date            *calendar.Date   `json:"date,omitempty"`
	ExistingHours   *decimal.Decimal `json:"existing_hours,omitempty"`
	MaxAllowedHours *decimal.Decimal `json:"max_allowed_hours,omitempty"`
}

func NoConflict() CheckResult {
	return CheckResult{}
}
