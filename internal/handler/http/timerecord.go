package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/handler/http/response"
)

type TimeRecordHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	GetTimeRecord(w http.ResponseWriter, r *http.Request)
	ListTimeRecords(w http.ResponseWriter, r *http.Request)
	ApproveTimeRecord(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.Service
}

func NewTimeRecordHandler(timeRecordService timerecord.Service) TimeRecordHandler {
	return &timeRecordHandlerImpl{timeRecordService: timeRecordService}
}

func (h *timeRecordHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timerecord.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	// A non-admin punch is always the caller's own.
	if req.EmployeeID == "" {
		if employeeID, ok := claimEmployeeID(r); ok {
			req.EmployeeID = employeeID
		}
	}
	if req.PunchedAt == "" {
		req.PunchedAt = time.Now().UTC().Format(time.RFC3339)
	}

	result, err := h.timeRecordService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time record created", result)
}

func (h *timeRecordHandlerImpl) GetTimeRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.timeRecordService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) ListTimeRecords(w http.ResponseWriter, r *http.Request) {
	filter := timerecord.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 50),
	}
	if e := r.URL.Query().Get("employee_id"); e != "" {
		filter.EmployeeID = &e
	}
	if f := r.URL.Query().Get("from"); f != "" {
		if from, err := time.Parse("2006-01-02", f); err == nil {
			filter.From = &from
		}
	}
	if t := r.URL.Query().Get("to"); t != "" {
		if to, err := time.Parse("2006-01-02", t); err == nil {
			filter.To = &to
		}
	}
	if a := r.URL.Query().Get("approved"); a != "" {
		approved := a == "true"
		filter.Approved = &approved
	}

	result, err := h.timeRecordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) ApproveTimeRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	approvedBy, ok := claimUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user claim")
		return
	}

	result, err := h.timeRecordService.Approve(r.Context(), id, approvedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *timeRecordHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	now := time.Now().UTC()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	result, err := h.timeRecordService.MonthlySummary(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
