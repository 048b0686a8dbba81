package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/timesheet-rules-go/internal/domain/calendar"
	"github.com/attendly/timesheet-rules-go/internal/domain/conflict"
	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
	"github.com/attendly/timesheet-rules-go/internal/handler/http/response"
	"github.com/attendly/timesheet-rules-go/internal/service/validation"
)

type ValidationHandler interface {
	CheckLeaveConflict(w http.ResponseWriter, r *http.Request)
	CheckTimesheetConflict(w http.ResponseWriter, r *http.Request)
	GetNonWorkingDay(w http.ResponseWriter, r *http.Request)
	GetCompOffEligibility(w http.ResponseWriter, r *http.Request)
}

type ValidationHandlerImpl struct {
	validationService *validation.Service
}

func NewValidationHandler(validationService *validation.Service) ValidationHandler {
	return &ValidationHandlerImpl{validationService: validationService}
}

// CheckLeaveConflict implements ValidationHandler.
func (h *ValidationHandlerImpl) CheckLeaveConflict(w http.ResponseWriter, r *http.Request) {
	var req conflict.LeaveCheckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckLeaveConflict decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Dates parse after Validate.
	start, _ := calendar.ParseDate(req.StartDate)
	end, _ := calendar.ParseDate(req.EndDate)

	result := h.validationService.CheckLeaveConflictWithTimesheet(
		r.Context(), start, end, leave.DurationType(req.DurationType))
	response.Success(w, result)
}

// CheckTimesheetConflict implements ValidationHandler.
func (h *ValidationHandlerImpl) CheckTimesheetConflict(w http.ResponseWriter, r *http.Request) {
	var req conflict.TimesheetCheckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckTimesheetConflict decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	activityDate, _ := calendar.ParseDate(req.ActivityDate)

	result := h.validationService.CheckTimesheetConflictWithLeave(
		r.Context(), activityDate, req.TotalHours)
	response.Success(w, result)
}

type nonWorkingDayResponse struct {
	Date            calendar.Date `json:"date"`
	IsNonWorkingDay bool          `json:"is_non_working_day"`
	DayOfWeek       string        `json:"day_of_week"`
	WeekOfMonth     int           `json:"week_of_month"`
}

// GetNonWorkingDay implements ValidationHandler.
func (h *ValidationHandlerImpl) GetNonWorkingDay(w http.ResponseWriter, r *http.Request) {
	d, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	response.Success(w, nonWorkingDayResponse{
		Date:            d,
		IsNonWorkingDay: calendar.IsNonWorkingDay(d),
		DayOfWeek:       d.Weekday().String(),
		WeekOfMonth:     d.WeekOfMonth(),
	})
}

type compOffEligibilityResponse struct {
	Date     calendar.Date `json:"date"`
	Eligible bool          `json:"eligible"`
}

// GetCompOffEligibility implements ValidationHandler.
func (h *ValidationHandlerImpl) GetCompOffEligibility(w http.ResponseWriter, r *http.Request) {
	d, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	response.Success(w, compOffEligibilityResponse{
		Date:     d,
		Eligible: h.validationService.IsCompOffEligible(r.Context(), d),
	})
}

func parseDateParam(w http.ResponseWriter, r *http.Request) (calendar.Date, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return calendar.Date{}, false
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be in YYYY-MM-DD format", nil)
		return calendar.Date{}, false
	}
	return d, true
}
