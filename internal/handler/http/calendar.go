package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
	"github.com/ashaile/humetix-backend-go/internal/handler/http/response"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
	attendanceService "github.com/ashaile/humetix-backend-go/internal/service/attendance"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
)

type CalendarHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	MonthTypes(w http.ResponseWriter, r *http.Request)
	WorkingDays(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	overrides calendar.Repository
	resolver  *calendarService.Resolver
}

func NewCalendarHandler(overrides calendar.Repository, resolver *calendarService.Resolver) CalendarHandler {
	return &calendarHandlerImpl{overrides: overrides, resolver: resolver}
}

func (h *calendarHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date    string `json:"date"`
		DayType string `json:"day_type"`
		Note    string `json:"note,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !validator.IsValidDate(req.Date) {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}
	dayType := calendar.DayType(req.DayType)
	if !dayType.IsValid() {
		response.HandleError(w, calendar.ErrInvalidDayType)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	o, err := h.overrides.Upsert(r.Context(), calendar.Override{
		Date:    date,
		DayType: dayType,
		Note:    req.Note,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, o)
}

// MonthTypes resolves every date of ?month=YYYY-MM to its day type.
func (h *calendarHandlerImpl) MonthTypes(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	from, to, err := attendanceService.MonthRange(month)
	if err != nil {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	types, err := h.resolver.TypesBetween(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

func (h *calendarHandlerImpl) WorkingDays(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	from, _, err := attendanceService.MonthRange(month)
	if err != nil {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	days, err := h.resolver.WorkingDays(r.Context(), from.Year(), from.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"month":        month,
		"working_days": days,
	})
}

func (h *calendarHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.overrides.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Calendar override removed", nil)
}
