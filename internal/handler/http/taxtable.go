package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/handler/http/response"
)

type TaxTableHandler interface {
	CreateBracket(w http.ResponseWriter, r *http.Request)
	GetBracket(w http.ResponseWriter, r *http.Request)
	ListBrackets(w http.ResponseWriter, r *http.Request)
	UpdateBracket(w http.ResponseWriter, r *http.Request)
	DeleteBracket(w http.ResponseWriter, r *http.Request)
}

type taxTableHandlerImpl struct {
	taxService tax.Service
}

func NewTaxTableHandler(taxService tax.Service) TaxTableHandler {
	return &taxTableHandlerImpl{taxService: taxService}
}

func (h *taxTableHandlerImpl) CreateBracket(w http.ResponseWriter, r *http.Request) {
	var req tax.CreateBracketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.taxService.CreateBracket(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax bracket created", result)
}

func (h *taxTableHandlerImpl) GetBracket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.taxService.GetBracket(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *taxTableHandlerImpl) ListBrackets(w http.ResponseWriter, r *http.Request) {
	var taxType *tax.Type
	if t := r.URL.Query().Get("type"); t != "" {
		parsed := tax.Type(t)
		taxType = &parsed
	}
	var year *int
	if y := queryInt(r, "year", 0); y > 0 {
		year = &y
	}

	result, err := h.taxService.ListBrackets(r.Context(), taxType, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *taxTableHandlerImpl) UpdateBracket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req tax.UpdateBracketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.taxService.UpdateBracket(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *taxTableHandlerImpl) DeleteBracket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.taxService.DeleteBracket(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Tax bracket deleted", nil)
}
