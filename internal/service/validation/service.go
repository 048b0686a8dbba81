package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
	"github.com/attendly/timesheet-rules-go/internal/domain/conflict"
	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
	"github.com/attendly/timesheet-rules-go/internal/domain/timesheet"
)

// DefaultMaxHoursWithHalfDayLeave is the ceiling on timesheet hours that can
// coexist with a half-day leave on the same date. Comparisons against it are
// strictly greater-than: hours exactly at the ceiling are allowed.
var DefaultMaxHoursWithHalfDayLeave = decimal.NewFromInt(6)

// Service runs the advisory conflict checks between leave requests and
// timesheet entries. Checks are best-effort: a failing upstream lookup is
// logged and reported as no conflict, because the upstream mutation endpoint
// is the only authority allowed to reject a submission.
type Service struct {
	timesheets      timesheet.Repository
	leaves          leave.Repository
	holidays        *HolidayCache
	maxHalfDayHours decimal.Decimal
	logger          *slog.Logger
}

func NewService(
	timesheets timesheet.Repository,
	leaves leave.Repository,
	holidays *HolidayCache,
	maxHalfDayHours decimal.Decimal,
	logger *slog.Logger,
) *Service {
	if maxHalfDayHours.IsZero() {
		maxHalfDayHours = DefaultMaxHoursWithHalfDayLeave
	}
	return &Service{
		timesheets:      timesheets,
		leaves:          leaves,
		holidays:        holidays,
		maxHalfDayHours: maxHalfDayHours,
		logger:          logger,
	}
}

// MaxHalfDayHours exposes the configured threshold for response payloads.
func (s *Service) MaxHalfDayHours() decimal.Decimal {
	return s.maxHalfDayHours
}

// CheckLeaveConflictWithTimesheet decides whether a proposed leave over
// [start, end] clashes with timesheet entries already logged in that span.
//
// Single-day requests get the duration-aware treatment: a full-day leave is
// blocked by any logged hours, a half-day leave only by hours strictly above
// the threshold. Multi-day spans are scanned one day at a time, in order,
// and the first day with logged hours decides - half-day never spans
// multiple days (enforced at the DTO layer), so a hit always conflicts.
func (s *Service) CheckLeaveConflictWithTimesheet(ctx context.Context, start, end calendar.Date, durationType leave.DurationType) conflict.CheckResult {
	if start.Equal(end) {
		return s.checkLeaveSingleDay(ctx, start, durationType)
	}

	for d := start; !d.After(end); d = d.Next() {
		day, err := s.timesheets.GetByDate(ctx, d)
		if err != nil {
			if errors.Is(err, timesheet.ErrDayNotFound) {
				continue
			}
			// Fail open: the check is advisory and must never block a
			// submission because of a transient upstream error.
			s.logger.Warn("timesheet lookup failed during leave conflict scan",
				"date", d.String(), "error", err)
			return conflict.NoConflict()
		}
		if day.TotalHours.IsPositive() {
			return timesheetExistsConflict(d, day.TotalHours)
		}
	}

	return conflict.NoConflict()
}

func (s *Service) checkLeaveSingleDay(ctx context.Context, d calendar.Date, durationType leave.DurationType) conflict.CheckResult {
	day, err := s.timesheets.GetByDate(ctx, d)
	if err != nil {
		if !errors.Is(err, timesheet.ErrDayNotFound) {
			s.logger.Warn("timesheet lookup failed during leave conflict check",
				"date", d.String(), "error", err)
		}
		return conflict.NoConflict()
	}

	if !day.TotalHours.IsPositive() {
		return conflict.NoConflict()
	}

	if durationType == leave.DurationFullDay {
		return timesheetExistsConflict(d, day.TotalHours)
	}

	// Half-day: logged hours are tolerated up to the threshold.
	if day.TotalHours.GreaterThan(s.maxHalfDayHours) {
		return s.halfDayHoursConflict(d, day.TotalHours)
	}
	return conflict.NoConflict()
}

// CheckTimesheetConflictWithLeave decides whether logging totalHours of
// activity on activityDate clashes with an existing leave request. The first
// pending or approved request covering the date decides, in upstream order.
func (s *Service) CheckTimesheetConflictWithLeave(ctx context.Context, activityDate calendar.Date, totalHours decimal.Decimal) conflict.CheckResult {
	requests, err := s.leaves.GetByDateRange(ctx, activityDate, activityDate)
	if err != nil {
		s.logger.Warn("leave lookup failed during timesheet conflict check",
			"date", activityDate.String(), "error", err)
		return conflict.NoConflict()
	}

	for _, req := range requests {
		if !req.Status.ConflictRelevant() || !req.Covers(activityDate) {
			continue
		}

		if req.DurationType == leave.DurationFullDay {
			d := activityDate
			return conflict.CheckResult{
				HasConflict: true,
				Type:        conflict.TypeFullDayLeave,
				Date:        &d,
				Message: fmt.Sprintf(
					"A %s full-day leave request already covers %s", req.Status, activityDate),
			}
		}

		// Half-day leave tolerates activity up to the threshold.
		if totalHours.GreaterThan(s.maxHalfDayHours) {
			return s.halfDayHoursConflict(activityDate, totalHours)
		}
		return conflict.NoConflict()
	}

	return conflict.NoConflict()
}

// IsCompOffEligible reports whether d is a valid basis for a comp-off
// request: a non-working day by the weekly rule, or an organization holiday.
// Holiday lookups that fail fall back to the weekly rule alone.
func (s *Service) IsCompOffEligible(ctx context.Context, d calendar.Date) bool {
	if calendar.IsNonWorkingDay(d) {
		return true
	}

	set, err := s.holidays.GetMonth(ctx, d.Year, d.Month)
	if err != nil {
		s.logger.Warn("holiday lookup failed during comp-off eligibility check",
			"date", d.String(), "error", err)
		return false
	}
	return set.Contains(d)
}

func timesheetExistsConflict(d calendar.Date, existing decimal.Decimal) conflict.CheckResult {
	return conflict.CheckResult{
		HasConflict:   true,
		Type:          conflict.TypeTimesheetExists,
		Date:          &d,
		ExistingHours: &existing,
		Message: fmt.Sprintf(
			"Timesheet already has %s hours logged on %s", existing, d),
	}
}

func (s *Service) halfDayHoursConflict(d calendar.Date, existing decimal.Decimal) conflict.CheckResult {
	max := s.maxHalfDayHours
	return conflict.CheckResult{
		HasConflict:     true,
		Type:            conflict.TypeHalfDayHoursExceeded,
		Date:            &d,
		ExistingHours:   &existing,
		MaxAllowedHours: &max,
		Message: fmt.Sprintf(
			"%s hours on %s exceed the %s-hour limit allowed alongside a half-day leave",
			existing, d, max),
	}
}
