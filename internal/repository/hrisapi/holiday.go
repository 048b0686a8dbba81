package hrisapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
)

// HolidayRepository derives the monthly holiday set from the upstream
// monthly-timesheet endpoint, which flags each day with isHoliday.
type HolidayRepository struct {
	client *Client
}

func NewHolidayRepository(client *Client) *HolidayRepository {
	return &HolidayRepository{client: client}
}

type monthlyTimesheetPayload struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  []monthlyDayPayload `json:"days"`
}

type monthlyDayPayload struct {
	Date       calendar.Date   `json:"date"`
	IsHoliday  bool            `json:"isHoliday"`
	TotalHours decimal.Decimal `json:"totalHours"`
}

func (r *HolidayRepository) GetMonth(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	query := url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(int(month))},
	}

	var payload monthlyTimesheetPayload
	if err := r.client.get(ctx, "/timesheets/monthly", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch monthly timesheet %d-%02d: %w", year, int(month), err)
	}

	set := make(calendar.HolidaySet)
	for _, day := range payload.Days {
		if day.IsHoliday {
			set.Add(day.Date)
		}
	}
	return set, nil
}
