package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/handler/http/response"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	AddDependent(w http.ResponseWriter, r *http.Request)
	ListDependents(w http.ResponseWriter, r *http.Request)
	AddDocument(w http.ResponseWriter, r *http.Request)
	ListDocuments(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.Filter{
		Search: r.URL.Query().Get("search"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := employee.Status(s)
		filter.Status = &status
	}
	if d := r.URL.Query().Get("department_id"); d != "" {
		filter.DepartmentID = &d
	}

	result, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.employeeService.History(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

type dependentRequest struct {
	Name           string  `json:"name"`
	BirthDate      *string `json:"birth_date,omitempty"`
	IsTaxDependent bool    `json:"is_tax_dependent"`
}

func (h *employeeHandlerImpl) AddDependent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dependentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Name is required", nil)
		return
	}

	dep := employee.Dependent{
		Name:           req.Name,
		IsTaxDependent: req.IsTaxDependent,
	}
	if req.BirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			response.BadRequest(w, "birth_date must be YYYY-MM-DD", nil)
			return
		}
		dep.BirthDate = &birth
	}

	result, err := h.employeeService.AddDependent(r.Context(), id, dep)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Dependent created", result)
}

func (h *employeeHandlerImpl) ListDependents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.employeeService.ListDependents(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

type documentRequest struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
}

func (h *employeeHandlerImpl) AddDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Name is required", nil)
		return
	}

	doc := employee.Document{
		Type: employee.DocumentType(req.Type),
		Name: req.Name,
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			response.BadRequest(w, "expiry_date must be YYYY-MM-DD", nil)
			return
		}
		doc.ExpiryDate = &expiry
	}

	result, err := h.employeeService.AddDocument(r.Context(), id, doc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document created", result)
}

func (h *employeeHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.employeeService.ListDocuments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
