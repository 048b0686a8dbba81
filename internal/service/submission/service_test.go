package submission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
	"github.com/attendly/timesheet-rules-go/internal/domain/conflict"
	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
	"github.com/attendly/timesheet-rules-go/internal/domain/timesheet"
	"github.com/attendly/timesheet-rules-go/internal/pkg/validator"
	"github.com/attendly/timesheet-rules-go/internal/service/validation"
)

type fakeLeaveRepo struct {
	created []leave.CreateRequest
	err     error
}

func (f *fakeLeaveRepo) GetByDateRange(ctx context.Context, start, end calendar.Date) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.CreateRequest) (leave.Request, error) {
	if f.err != nil {
		return leave.Request{}, f.err
	}
	f.created = append(f.created, req)
	start, _ := calendar.ParseDate(req.StartDate)
	end, _ := calendar.ParseDate(req.EndDate)
	return leave.Request{
		ID:           "lr-created",
		StartDate:    start,
		EndDate:      end,
		DurationType: leave.DurationType(req.DurationType),
		Status:       leave.RequestStatusPending,
	}, nil
}

type fakeTimesheetRepo struct {
	days map[string]timesheet.Day
	err  error
}

func (f *fakeTimesheetRepo) GetByDate(ctx context.Context, d calendar.Date) (timesheet.Day, error) {
	day, ok := f.days[d.String()]
	if !ok {
		return timesheet.Day{}, timesheet.ErrDayNotFound
	}
	return day, nil
}

func (f *fakeTimesheetRepo) CreateEntries(ctx context.Context, req timesheet.CreateEntriesRequest) (timesheet.Day, error) {
	if f.err != nil {
		return timesheet.Day{}, f.err
	}
	d, _ := calendar.ParseDate(req.WorkDate)
	return timesheet.Day{WorkDate: d, TotalHours: req.TotalHours()}, nil
}

type countingHolidayRepo struct {
	calls int
}

func (f *countingHolidayRepo) GetMonth(ctx context.Context, year int, month time.Month) (calendar.HolidaySet, error) {
	f.calls++
	return make(calendar.HolidaySet), nil
}

func newTestService(leaves *fakeLeaveRepo, timesheets *fakeTimesheetRepo, holidayRepo *countingHolidayRepo) (*Service, *validation.HolidayCache) {
	if leaves == nil {
		leaves = &fakeLeaveRepo{}
	}
	if timesheets == nil {
		timesheets = &fakeTimesheetRepo{}
	}
	if holidayRepo == nil {
		holidayRepo = &countingHolidayRepo{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := validation.NewHolidayCache(holidayRepo)
	validationSvc := validation.NewService(timesheets, leaves, cache, decimal.NewFromInt(6), logger)
	return NewService(leaves, timesheets, validationSvc, cache, logger), cache
}

func TestSubmitLeave_CreatesAndReturnsAdvisory(t *testing.T) {
	leaves := &fakeLeaveRepo{}
	timesheets := &fakeTimesheetRepo{days: map[string]timesheet.Day{
		"2025-01-11": {TotalHours: decimal.NewFromInt(8)},
	}}
	svc, _ := newTestService(leaves, timesheets, nil)

	result, err := svc.SubmitLeave(context.Background(), leave.CreateRequest{
		StartDate:    "2025-01-10",
		EndDate:      "2025-01-12",
		DurationType: "full_day",
		Reason:       "vacation",
	})
	require.NoError(t, err)

	// The mutation went through even though the advisory check flagged
	// the logged hours on the 11th.
	assert.Equal(t, "lr-created", result.Request.ID)
	require.Len(t, leaves.created, 1)
	assert.True(t, result.Advisory.HasConflict)
	assert.Equal(t, conflict.TypeTimesheetExists, result.Advisory.Type)
}

func TestSubmitLeave_InvalidRequestNeverReachesUpstream(t *testing.T) {
	leaves := &fakeLeaveRepo{}
	svc, _ := newTestService(leaves, nil, nil)

	_, err := svc.SubmitLeave(context.Background(), leave.CreateRequest{
		StartDate:    "2025-01-12",
		EndDate:      "2025-01-10",
		DurationType: "full_day",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Empty(t, leaves.created)
}

func TestSubmitLeave_UpstreamErrorPropagates(t *testing.T) {
	leaves := &fakeLeaveRepo{err: errors.New("upstream rejected")}
	svc, _ := newTestService(leaves, nil, nil)

	_, err := svc.SubmitLeave(context.Background(), leave.CreateRequest{
		StartDate:    "2025-01-10",
		EndDate:      "2025-01-10",
		DurationType: "full_day",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create leave request")
}

func TestSubmitLeave_InvalidatesEveryTouchedMonth(t *testing.T) {
	holidayRepo := &countingHolidayRepo{}
	svc, cache := newTestService(nil, nil, holidayRepo)
	ctx := context.Background()

	// Warm the cache for the three months a Dec-Feb leave spans.
	_, err := cache.GetMonth(ctx, 2025, time.December)
	require.NoError(t, err)
	_, err = cache.GetMonth(ctx, 2026, time.January)
	require.NoError(t, err)
	_, err = cache.GetMonth(ctx, 2026, time.February)
	require.NoError(t, err)
	require.Equal(t, 3, holidayRepo.calls)

	_, err = svc.SubmitLeave(ctx, leave.CreateRequest{
		StartDate:    "2025-12-29",
		EndDate:      "2026-02-02",
		DurationType: "full_day",
	})
	require.NoError(t, err)

	// Every touched month refetches on the next read.
	_, err = cache.GetMonth(ctx, 2025, time.December)
	require.NoError(t, err)
	_, err = cache.GetMonth(ctx, 2026, time.January)
	require.NoError(t, err)
	_, err = cache.GetMonth(ctx, 2026, time.February)
	require.NoError(t, err)
	assert.Equal(t, 6, holidayRepo.calls)
}

func TestSubmitTimesheetEntries_CreatesAndReturnsAdvisory(t *testing.T) {
	leaves := &fakeLeaveRepo{}
	timesheets := &fakeTimesheetRepo{}
	svc, _ := newTestService(leaves, timesheets, nil)

	result, err := svc.SubmitTimesheetEntries(context.Background(), timesheet.CreateEntriesRequest{
		WorkDate: "2025-03-05",
		Entries: []timesheet.EntryInput{
			{ProjectID: "p1", TaskName: "Development", Hours: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", result.Day.WorkDate.String())
	assert.False(t, result.Advisory.HasConflict)
}

func TestSubmitTimesheetEntries_InvalidRequestRejected(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil)

	_, err := svc.SubmitTimesheetEntries(context.Background(), timesheet.CreateEntriesRequest{
		WorkDate: "2025-03-05",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "entries")
}
