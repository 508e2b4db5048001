package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
	"github.com/ashaile/humetix-backend-go/internal/handler/http/response"
	wageService "github.com/ashaile/humetix-backend-go/internal/service/wage"
)

type WageHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
	ResolveDetail(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	ListScope(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	resolver *wageService.Resolver
	configs  wage.Repository
}

func NewWageHandler(resolver *wageService.Resolver, configs wage.Repository) WageHandler {
	return &wageHandlerImpl{resolver: resolver, configs: configs}
}

func (h *wageHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var siteID *string
	if s := r.URL.Query().Get("site_id"); s != "" {
		siteID = &s
	}

	resolved, err := h.resolver.Resolve(r.Context(), chi.URLParam(r, "employeeID"), siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resolved)
}

func (h *wageHandlerImpl) ResolveDetail(w http.ResponseWriter, r *http.Request) {
	resolved, sources, err := h.resolver.ResolveDetail(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"resolved": resolved,
		"sources":  sources,
	})
}

type saveWageRequest struct {
	Scope    string  `json:"scope"`
	TargetID *string `json:"target_id,omitempty"`

	WageType            *wage.WageType     `json:"wage_type,omitempty"`
	HourlyWage          *int64             `json:"hourly_wage,omitempty"`
	DailyWage           *int64             `json:"daily_wage,omitempty"`
	StandardWorkHours   *float64           `json:"standard_work_hours,omitempty"`
	BreakHours          *float64           `json:"break_hours,omitempty"`
	OvertimeRate        *float64           `json:"overtime_rate,omitempty"`
	NightBonusRate      *float64           `json:"night_bonus_rate,omitempty"`
	UnpaidHolidayRate   *float64           `json:"unpaid_holiday_rate,omitempty"`
	PaidHolidayRate     *float64           `json:"paid_holiday_rate,omitempty"`
	PaidHolidayOTRate   *float64           `json:"paid_holiday_ot_rate,omitempty"`
	OvertimeUnit        *wage.OvertimeUnit `json:"overtime_unit,omitempty"`
	OvertimeFixedAmount *int64             `json:"overtime_fixed_amount,omitempty"`
	CalcMethod          *wage.CalcMethod   `json:"calc_method,omitempty"`
}

func (h *wageHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req saveWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	saved, err := h.resolver.Save(r.Context(), wage.Config{
		Scope:               wage.Scope(req.Scope),
		TargetID:            req.TargetID,
		WageType:            req.WageType,
		HourlyWage:          req.HourlyWage,
		DailyWage:           req.DailyWage,
		StandardWorkHours:   req.StandardWorkHours,
		BreakHours:          req.BreakHours,
		OvertimeRate:        req.OvertimeRate,
		NightBonusRate:      req.NightBonusRate,
		UnpaidHolidayRate:   req.UnpaidHolidayRate,
		PaidHolidayRate:     req.PaidHolidayRate,
		PaidHolidayOTRate:   req.PaidHolidayOTRate,
		OvertimeUnit:        req.OvertimeUnit,
		OvertimeFixedAmount: req.OvertimeFixedAmount,
		CalcMethod:          req.CalcMethod,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, saved)
}

func (h *wageHandlerImpl) ListScope(w http.ResponseWriter, r *http.Request) {
	scope := wage.Scope(chi.URLParam(r, "scope"))
	switch scope {
	case wage.ScopeSystem, wage.ScopeSite, wage.ScopeEmployee:
	default:
		response.HandleError(w, wage.ErrInvalidScope)
		return
	}

	configs, err := h.configs.ListByScope(r.Context(), scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, configs)
}
