package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashaile/humetix-backend-go/internal/handler/http/response"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
	advanceService "github.com/ashaile/humetix-backend-go/internal/service/advance"
)

type AdvanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	service *advanceService.Service
}

func NewAdvanceHandler(service *advanceService.Service) AdvanceHandler {
	return &advanceHandlerImpl{service: service}
}

func (h *advanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employee_id"`
		Month      string `json:"month"`
		Amount     int64  `json:"amount"`
		Reason     string `json:"reason,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidMonth(req.Month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	created, err := h.service.Submit(r.Context(), req.EmployeeID, req.Month, req.Amount, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Advance requested", created)
}

type reviewRequest struct {
	Comment string `json:"comment,omitempty"`
}

func (h *advanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	reviewed, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"), req.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Advance approved", reviewed)
}

func (h *advanceHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	reviewed, err := h.service.Reject(r.Context(), chi.URLParam(r, "id"), req.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Advance rejected", reviewed)
}

func (h *advanceHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	requests, err := h.service.ListMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}
