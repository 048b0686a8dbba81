package hrisapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
	"github.com/attendly/timesheet-rules-go/internal/domain/timesheet"
)

// TimesheetRepository implements timesheet.Repository against the upstream
// API. The upstream serves lowerCamel JSON.
type TimesheetRepository struct {
	client *Client
}

func NewTimesheetRepository(client *Client) *TimesheetRepository {
	return &TimesheetRepository{client: client}
}

type dayPayload struct {
	WorkDate   calendar.Date   `json:"workDate"`
	TotalHours decimal.Decimal `json:"totalHours"`
	Entries    []entryPayload  `json:"entries"`
}

type entryPayload struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	TaskName    string          `json:"taskName"`
	Hours       decimal.Decimal `json:"hours"`
	Description *string         `json:"description,omitempty"`
}

func (p dayPayload) toDomain() timesheet.Day {
	day := timesheet.Day{
		WorkDate:   p.WorkDate,
		TotalHours: p.TotalHours,
		Entries:    make([]timesheet.Entry, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		day.Entries = append(day.Entries, timesheet.Entry{
			ID:          e.ID,
			ProjectID:   e.ProjectID,
			TaskName:    e.TaskName,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}
	return day
}

func (r *TimesheetRepository) GetByDate(ctx context.Context, d calendar.Date) (timesheet.Day, error) {
	var payload dayPayload
	err := r.client.get(ctx, "/timesheets/by-date", url.Values{"workDate": {d.String()}}, &payload)
	if err != nil {
		if IsNotFound(err) {
			return timesheet.Day{}, timesheet.ErrDayNotFound
		}
		return timesheet.Day{}, fmt.Errorf("fetch timesheet for %s: %w", d, err)
	}
	return payload.toDomain(), nil
}

type createEntriesPayload struct {
	WorkDate string              `json:"workDate"`
	Entries  []entryInputPayload `json:"entries"`
}

type entryInputPayload struct {
	ProjectID   string          `json:"projectId"`
	TaskName    string          `json:"taskName"`
	Hours       decimal.Decimal `json:"hours"`
	Description *string         `json:"description,omitempty"`
}

func (r *TimesheetRepository) CreateEntries(ctx context.Context, req timesheet.CreateEntriesRequest) (timesheet.Day, error) {
	body := createEntriesPayload{
		WorkDate: req.WorkDate,
		Entries:  make([]entryInputPayload, 0, len(req.Entries)),
	}
	for _, e := range req.Entries {
		body.Entries = append(body.Entries, entryInputPayload{
			ProjectID:   e.ProjectID,
			TaskName:    e.TaskName,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}

	var payload dayPayload
	if err := r.client.post(ctx, "/timesheets/entries", body, &payload); err != nil {
		return timesheet.Day{}, fmt.Errorf("create timesheet entries for %s: %w", req.WorkDate, err)
	}
	return payload.toDomain(), nil
}
