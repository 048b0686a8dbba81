package conflict

import (
	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/pkg/validator"
)

type LeaveCheckRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationType string `json:"duration_type"`
}

func (r *LeaveCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsInSlice(r.DurationType, []string{"full_day", "half_day"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_type",
			Message: "duration_type must be one of: full_day, half_day",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetCheckRequest struct {
	ActivityDate string          `json:"activity_date"`
	TotalHours   decimal.Decimal `json:"total_hours"`
}

func (r *TimesheetCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.ActivityDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "activity_date",
			Message: "activity_date must be in YYYY-MM-DD format",
		})
	}

	if r.TotalHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours",
			Message: "total_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
