package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashaile/humetix-backend-go/internal/handler/http/response"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
	payslipService "github.com/ashaile/humetix-backend-go/internal/service/payslip"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GenerateSingle(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Severance(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	calculator *payslipService.Calculator
}

func NewPayslipHandler(calculator *payslipService.Calculator) PayslipHandler {
	return &payslipHandlerImpl{calculator: calculator}
}

type generateRequest struct {
	Month      string `json:"month"`
	SalaryMode string `json:"salary_mode,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidMonth(req.Month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	result, err := h.calculator.GenerateMonth(r.Context(), req.Month, req.SalaryMode)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payslipHandlerImpl) GenerateSingle(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidMonth(req.Month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	p, err := h.calculator.GenerateSingle(r.Context(), chi.URLParam(r, "employeeID"), req.Month, req.SalaryMode)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

func (h *payslipHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	payslips, err := h.calculator.ListMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payslips)
}

func (h *payslipHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Month string `json:"month"`
		payslipService.ManualEdit
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidMonth(req.Month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	p, err := h.calculator.Edit(r.Context(), chi.URLParam(r, "employeeID"), req.Month, req.ManualEdit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip updated", p)
}

func (h *payslipHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidMonth(req.Month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	p, err := h.calculator.Reset(r.Context(), chi.URLParam(r, "employeeID"), req.Month, req.SalaryMode)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip reset to computed values", p)
}

func (h *payslipHandlerImpl) Severance(w http.ResponseWriter, r *http.Request) {
	est, err := h.calculator.EstimateSeverance(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, est)
}
