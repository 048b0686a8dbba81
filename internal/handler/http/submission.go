package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/timesheet-rules-go/internal/domain/leave"
	"github.com/attendly/timesheet-rules-go/internal/domain/timesheet"
	"github.com/attendly/timesheet-rules-go/internal/handler/http/response"
	"github.com/attendly/timesheet-rules-go/internal/service/submission"
)

type SubmissionHandler interface {
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	CreateTimesheetEntries(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandlerImpl struct {
	submissionService *submission.Service
}

func NewSubmissionHandler(submissionService *submission.Service) SubmissionHandler {
	return &SubmissionHandlerImpl{submissionService: submissionService}
}

// CreateLeaveRequest implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.submissionService.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// CreateTimesheetEntries implements SubmissionHandler.
func (h *SubmissionHandlerImpl) CreateTimesheetEntries(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateEntriesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTimesheetEntries decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.submissionService.SubmitTimesheetEntries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet entries submitted successfully", result)
}
