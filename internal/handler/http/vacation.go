package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
	"github.com/viniciussvasques/innexar-hr/internal/handler/http/response"
)

type VacationHandler interface {
	RequestVacation(w http.ResponseWriter, r *http.Request)
	GetVacation(w http.ResponseWriter, r *http.Request)
	ListVacations(w http.ResponseWriter, r *http.Request)
	TransitionVacation(w http.ResponseWriter, r *http.Request)
	ApproveVacation(w http.ResponseWriter, r *http.Request)
	RejectVacation(w http.ResponseWriter, r *http.Request)
	TakeVacation(w http.ResponseWriter, r *http.Request)
	CancelVacation(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetProportional(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.Service
}

func NewVacationHandler(vacationService vacation.Service) VacationHandler {
	return &vacationHandlerImpl{vacationService: vacationService}
}

func (h *vacationHandlerImpl) RequestVacation(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if req.EmployeeID == "" {
		if employeeID, ok := claimEmployeeID(r); ok {
			req.EmployeeID = employeeID
		}
	}

	result, err := h.vacationService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation requested", result)
}

func (h *vacationHandlerImpl) GetVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.vacationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) ListVacations(w http.ResponseWriter, r *http.Request) {
	filter := vacation.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if e := r.URL.Query().Get("employee_id"); e != "" {
		filter.EmployeeID = &e
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := vacation.Status(s)
		filter.Status = &status
	}

	result, err := h.vacationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) TransitionVacation(w http.ResponseWriter, r *http.Request) {
	var req vacation.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	h.transition(w, r, req)
}

// The verb routes mirror the transition endpoint with a fixed target
// status; the optional body only carries notes.
func (h *vacationHandlerImpl) ApproveVacation(w http.ResponseWriter, r *http.Request) {
	h.transitionTo(w, r, vacation.StatusApproved)
}

func (h *vacationHandlerImpl) RejectVacation(w http.ResponseWriter, r *http.Request) {
	h.transitionTo(w, r, vacation.StatusRejected)
}

func (h *vacationHandlerImpl) TakeVacation(w http.ResponseWriter, r *http.Request) {
	h.transitionTo(w, r, vacation.StatusTaken)
}

func (h *vacationHandlerImpl) CancelVacation(w http.ResponseWriter, r *http.Request) {
	h.transitionTo(w, r, vacation.StatusCancelled)
}

func (h *vacationHandlerImpl) transitionTo(w http.ResponseWriter, r *http.Request, status vacation.Status) {
	var req vacation.TransitionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	req.Status = string(status)
	h.transition(w, r, req)
}

func (h *vacationHandlerImpl) transition(w http.ResponseWriter, r *http.Request, req vacation.TransitionRequest) {
	id := chi.URLParam(r, "id")

	actorID, ok := claimUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user claim")
		return
	}

	result, err := h.vacationService.Transition(r.Context(), id, actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	result, err := h.vacationService.Balance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *vacationHandlerImpl) GetProportional(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	result, err := h.vacationService.Proportional(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
