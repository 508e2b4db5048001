package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashaile/humetix-backend-go/internal/handler/http/response"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
	leaveService "github.com/ashaile/humetix-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	GenerateAccruals(w http.ResponseWriter, r *http.Request)
	AutoGenerate(w http.ResponseWriter, r *http.Request)
	DeleteAccrual(w http.ResponseWriter, r *http.Request)
	RegisterUsage(w http.ResponseWriter, r *http.Request)
	DeleteUsage(w http.ResponseWriter, r *http.Request)
	ImportUsages(w http.ResponseWriter, r *http.Request)
	SyncAll(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	service *leaveService.Service
}

func NewLeaveHandler(service *leaveService.Service) LeaveHandler {
	return &leaveHandlerImpl{service: service}
}

// yearParam reads ?year=, defaulting to the current year.
func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, false
	}
	return year, true
}

func (h *leaveHandlerImpl) GenerateAccruals(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}

	created, err := h.service.GenerateAccruals(r.Context(), chi.URLParam(r, "employeeID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"created": created})
}

func (h *leaveHandlerImpl) AutoGenerate(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}

	created, err := h.service.AutoGenerateFromAttendance(r.Context(), chi.URLParam(r, "employeeID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"created": created})
}

func (h *leaveHandlerImpl) DeleteAccrual(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccrual(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave accrual removed", nil)
}

func (h *leaveHandlerImpl) RegisterUsage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID  string  `json:"employee_id"`
		UseDate     string  `json:"use_date"`
		Days        float64 `json:"days"`
		Description string  `json:"description,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidDate(req.UseDate) {
		response.BadRequest(w, "use_date must be YYYY-MM-DD", nil)
		return
	}
	if req.Days <= 0 {
		response.BadRequest(w, "days must be positive", nil)
		return
	}

	useDate, _ := time.Parse("2006-01-02", req.UseDate)
	usages, err := h.service.RegisterUsage(r.Context(), req.EmployeeID, useDate, req.Days, req.Description)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave usage recorded", usages)
}

func (h *leaveHandlerImpl) DeleteUsage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUsage(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave usage removed", nil)
}

func (h *leaveHandlerImpl) ImportUsages(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}

	created, err := h.service.ImportAttendanceUsages(r.Context(), chi.URLParam(r, "employeeID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]int{"created": created})
}

func (h *leaveHandlerImpl) SyncAll(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}
	includeAttendance := r.URL.Query().Get("include_attendance") == "true"

	result, err := h.service.SyncAll(r.Context(), year, includeAttendance)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}

	balance, err := h.service.Balance(r.Context(), chi.URLParam(r, "employeeID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}

func (h *leaveHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a valid year", nil)
		return
	}

	detail, err := h.service.EmployeeDetail(r.Context(), chi.URLParam(r, "employeeID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}
