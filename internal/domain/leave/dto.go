package leave

import (
	"github.com/attendly/timesheet-rules-go/internal/pkg/validator"
)

type CreateRequest struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DurationType   string  `json:"duration_type"`
	HalfDaySegment *string `json:"half_day_segment,omitempty"`
	Reason         string  `json:"reason"`
}

var durationTypes = []string{string(DurationFullDay), string(DurationHalfDay)}
var halfDaySegments = []string{string(SegmentFirstHalf), string(SegmentSecondHalf)}

// Validate enforces the form-level preconditions the conflict checkers rely
// on, in particular that a half-day request never spans more than one date.
func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	// Start date
	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	// End date
	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
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

	// Duration type
	if !validator.IsInSlice(r.DurationType, durationTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_type",
			Message: "duration_type must be one of: full_day, half_day",
		})
	}

	// Half-day rules
	if r.DurationType == string(DurationHalfDay) {
		if startOK && endOK && !start.Equal(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "half_day leave must start and end on the same date",
			})
		}
		if r.HalfDaySegment == nil || !validator.IsInSlice(*r.HalfDaySegment, halfDaySegments) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day_segment",
				Message: "half_day_segment must be one of: first_half, second_half",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
