package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
	"github.com/attendly/timesheet-rules-go/internal/domain/conflict"
	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
	"github.com/attendly/timesheet-rules-go/internal/domain/timesheet"
	"github.com/attendly/timesheet-rules-go/internal/service/validation"
)

// Service forwards leave and timesheet mutations to the upstream API. Each
// submission runs the matching advisory check first and returns its result
// alongside the created record, but the check never blocks the mutation:
// rejecting a submission is the upstream's call alone.
type Service struct {
	leaves     leave.Repository
	timesheets timesheet.Repository
	validation *validation.Service
	holidays   *validation.HolidayCache
	logger     *slog.Logger
}

func NewService(
	leaves leave.Repository,
	timesheets timesheet.Repository,
	validationService *validation.Service,
	holidays *validation.HolidayCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		leaves:     leaves,
		timesheets: timesheets,
		validation: validationService,
		holidays:   holidays,
		logger:     logger,
	}
}

type LeaveResult struct {
	Request  leave.Request        `json:"request"`
	Advisory conflict.CheckResult `json:"advisory"`
}

// SubmitLeave validates the request shape, runs the advisory timesheet
// check, creates the leave upstream and invalidates the holiday cache for
// every month the leave span touches.
func (s *Service) SubmitLeave(ctx context.Context, req leave.CreateRequest) (LeaveResult, error) {
	if err := req.Validate(); err != nil {
		return LeaveResult{}, err
	}

	// Dates parse after Validate; errors here are programming mistakes.
	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return LeaveResult{}, fmt.Errorf("parse start date: %w", err)
	}
	end, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		return LeaveResult{}, fmt.Errorf("parse end date: %w", err)
	}

	advisory := s.validation.CheckLeaveConflictWithTimesheet(ctx, start, end, leave.DurationType(req.DurationType))
	if advisory.HasConflict {
		s.logger.Info("leave submitted despite advisory conflict",
			"start_date", req.StartDate,
			"end_date", req.EndDate,
			"conflict_type", advisory.Type,
		)
	}

	created, err := s.leaves.Create(ctx, req)
	if err != nil {
		return LeaveResult{}, fmt.Errorf("create leave request: %w", err)
	}

	s.invalidateMonths(start, end)
	return LeaveResult{Request: created, Advisory: advisory}, nil
}

type TimesheetResult struct {
	Day      timesheet.Day        `json:"day"`
	Advisory conflict.CheckResult `json:"advisory"`
}

// SubmitTimesheetEntries runs the advisory leave-overlap check, then creates
// the entries upstream.
func (s *Service) SubmitTimesheetEntries(ctx context.Context, req timesheet.CreateEntriesRequest) (TimesheetResult, error) {
	if err := req.Validate(); err != nil {
		return TimesheetResult{}, err
	}

	workDate, err := calendar.ParseDate(req.WorkDate)
	if err != nil {
		return TimesheetResult{}, fmt.Errorf("parse work date: %w", err)
	}

	advisory := s.validation.CheckTimesheetConflictWithLeave(ctx, workDate, req.TotalHours())
	if advisory.HasConflict {
		s.logger.Info("timesheet submitted despite advisory conflict",
			"work_date", req.WorkDate,
			"conflict_type", advisory.Type,
		)
	}

	day, err := s.timesheets.CreateEntries(ctx, req)
	if err != nil {
		return TimesheetResult{}, fmt.Errorf("create timesheet entries: %w", err)
	}

	return TimesheetResult{Day: day, Advisory: advisory}, nil
}

// invalidateMonths drops the cached holiday set for every (year, month) the
// inclusive span [start, end] touches.
func (s *Service) invalidateMonths(start, end calendar.Date) {
	year, month := start.Year, start.Month
	for {
		s.holidays.Invalidate(year, month)
		if year == end.Year && month == end.Month {
			return
		}
		if month == 12 {
			year, month = year+1, 1
		} else {
			month++
		}
	}
}
