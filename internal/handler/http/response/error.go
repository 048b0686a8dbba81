package response

import (
	"errors"
	"net/http"

	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
	"github.com/attendly/timesheet-rules-go/internal/domain/timesheet"
	"github.com/attendly/timesheet-rules-go/internal/pkg/validator"
	"github.com/attendly/timesheet-rules-go/internal/repository/hrisapi"
)

// HandleError maps domain and upstream errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Domain errors
	switch {
	case errors.Is(err, timesheet.ErrDayNotFound):
		NotFound(w, "No timesheet found for that date")
		return
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
		return
	}

	// Upstream errors: the HRIS API's own rejections pass through with their
	// message; everything else is reported as an upstream failure.
	if apiErr, ok := hrisapi.AsAPIError(err); ok {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			NotFound(w, "Not found")
		case apiErr.StatusCode == http.StatusConflict:
			Conflict(w, apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			BadRequest(w, apiErr.Message, nil)
		default:
			BadGateway(w, "Upstream HRIS request failed")
		}
		return
	}

	// Default
	InternalServerError(w, "An unexpected error occurred")
}
