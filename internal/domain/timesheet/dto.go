package timesheet

import (
	"github.com/shopspring/decimal"

	"github.com/attendly/timesheet-rules-go/internal/pkg/validator"
)

type EntryInput struct {
	ProjectID   string          `json:"project_id"`
	TaskName    string          `json:"task_name"`
	Hours       decimal.Decimal `json:"hours"`
	Description *string         `json:"description,omitempty"`
}

type CreateEntriesRequest struct {
	WorkDate string       `json:"work_date"`
	Entries  []EntryInput `json:"entries"`
}

func (r *CreateEntriesRequest) Validate() error {
	var errs validator.ValidationErrors

	// Work date
	if validator.IsEmpty(r.WorkDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be in YYYY-MM-DD format",
		})
	}

	// Entries
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}
	for _, entry := range r.Entries {
		if validator.IsEmpty(entry.TaskName) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries.task_name",
				Message: "task_name is required for every entry",
			})
		}
		if !entry.Hours.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries.hours",
				Message: "hours must be greater than zero",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TotalHours sums the entry hours of the request. Used only for the advisory
// conflict check; the upstream recomputes the day total itself.
func (r *CreateEntriesRequest) TotalHours() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range r.Entries {
		total = total.Add(entry.Hours)
	}
	return total
}
