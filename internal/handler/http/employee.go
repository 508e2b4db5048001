package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashaile/humetix-backend-go/internal/handler/http/response"
	employeeService "github.com/ashaile/humetix-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resign(w http.ResponseWriter, r *http.Request)
	Identify(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	service *employeeService.Service
}

func NewEmployeeHandler(service *employeeService.Service) EmployeeHandler {
	return &employeeHandlerImpl{service: service}
}

func (h *employeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employeeService.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	emp, err := h.service.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee registered", emp)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

func (h *employeeHandlerImpl) Resign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResignDate string `json:"resign_date,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var resignDate *time.Time
	if req.ResignDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ResignDate)
		if err != nil {
			response.BadRequest(w, "resign_date must be YYYY-MM-DD", nil)
			return
		}
		resignDate = &parsed
	}

	emp, err := h.service.Resign(r.Context(), chi.URLParam(r, "id"), resignDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee resigned", emp)
}

func (h *employeeHandlerImpl) Identify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		BirthDate string `json:"birth_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	emp, err := h.service.Identify(r.Context(), req.Name, req.BirthDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}
