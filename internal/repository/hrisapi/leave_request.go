package hrisapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
)

// LeaveRequestRepository implements leave.Repository against the upstream API.
type LeaveRequestRepository struct {
	client *Client
}

func NewLeaveRequestRepository(client *Client) *LeaveRequestRepository {
	return &LeaveRequestRepository{client: client}
}

type leaveRequestPayload struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	StartDate      calendar.Date   `json:"startDate"`
	EndDate        calendar.Date   `json:"endDate"`
	DurationType   string          `json:"durationType"`
	HalfDaySegment *string         `json:"halfDaySegment,omitempty"`
	Hours          decimal.Decimal `json:"hours"`
	Reason         string          `json:"reason"`
	Status         string          `json:"status"`
	SubmittedAt    *time.Time      `json:"submittedAt,omitempty"`
}

func (p leaveRequestPayload) toDomain() leave.Request {
	req := leave.Request{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		DurationType: leave.DurationType(p.DurationType),
		Hours:        p.Hours,
		Reason:       p.Reason,
		Status:       leave.RequestStatus(p.Status),
	}
	if p.HalfDaySegment != nil {
		segment := leave.HalfDaySegment(*p.HalfDaySegment)
		req.HalfDaySegment = &segment
	}
	if p.SubmittedAt != nil {
		req.SubmittedAt = *p.SubmittedAt
	}
	return req
}

func (r *LeaveRequestRepository) GetByDateRange(ctx context.Context, start, end calendar.Date) ([]leave.Request, error) {
	query := url.Values{
		"startDate": {start.String()},
		"endDate":   {end.String()},
	}

	var payload []leaveRequestPayload
	if err := r.client.get(ctx, "/leave-requests", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch leave requests %s..%s: %w", start, end, err)
	}

	requests := make([]leave.Request, 0, len(payload))
	for _, p := range payload {
		requests = append(requests, p.toDomain())
	}
	return requests, nil
}

type createLeavePayload struct {
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	DurationType   string  `json:"durationType"`
	HalfDaySegment *string `json:"halfDaySegment,omitempty"`
	Reason         string  `json:"reason"`
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.CreateRequest) (leave.Request, error) {
	body := createLeavePayload{
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DurationType:   req.DurationType,
		HalfDaySegment: req.HalfDaySegment,
		Reason:         req.Reason,
	}

	var payload leaveRequestPayload
	if err := r.client.post(ctx, "/leave-requests", body, &payload); err != nil {
		return leave.Request{}, fmt.Errorf("create leave request: %w", err)
	}
	return payload.toDomain(), nil
}
