package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// ConflictRelevant reports whether a request in this status can block
// timesheet activity. Rejected requests never do.
func (s RequestStatus) ConflictRelevant() bool {
	return s == RequestStatusPending || s == RequestStatusApproved
}

// DurationType maps to the upstream leave duration enum
type DurationType string

const (
	DurationFullDay DurationType = "full_day"
	DurationHalfDay DurationType = "half_day"
)

type HalfDaySegment string

const (
	SegmentFirstHalf  HalfDaySegment = "first_half"
	SegmentSecondHalf HalfDaySegment = "second_half"
)

// Request entity, read-only to this service. Owned by the upstream API.
type Request struct {
	ID         string
	EmployeeID string

	StartDate calendar.Date
	EndDate   calendar.Date

	DurationType   DurationType
	HalfDaySegment *HalfDaySegment
	Hours          decimal.Decimal

	Reason string
	Status RequestStatus

	SubmittedAt time.Time
}

// Covers reports whether d falls inside the request's inclusive date span.
func (r Request) Covers(d calendar.Date) bool {
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}
