package response

import (
	"errors"
	"net/http"

	"github.com/ashaile/humetix-backend-go/internal/domain/advance"
	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee with this name and birth date already exists")
	case errors.Is(err, employee.ErrAlreadyResigned):
		Conflict(w, "Employee already resigned")
	case errors.Is(err, employee.ErrNoHireDate):
		UnprocessableEntity(w, "Employee has no hire date on file")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrOverrideNotFound):
		NotFound(w, "Calendar override not found")
	case errors.Is(err, calendar.ErrInvalidDayType):
		BadRequest(w, "Invalid day type", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrInvalidWorkType):
		BadRequest(w, "Invalid work type", nil)
	case errors.Is(err, attendance.ErrClockTimeNeeded):
		BadRequest(w, "Clock-in and clock-out are required for this work type", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrAccrualNotFound):
		NotFound(w, "Leave accrual not found")
	case errors.Is(err, leave.ErrUsageNotFound):
		NotFound(w, "Leave usage not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrDuplicateAccrual):
		Conflict(w, "Leave accrual already exists for this month")

	// Wage domain errors
	case errors.Is(err, wage.ErrConfigNotFound):
		NotFound(w, "Wage config not found")
	case errors.Is(err, wage.ErrInvalidScope):
		BadRequest(w, "Invalid wage config scope", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrManualOverride):
		Conflict(w, "Payslip was hand-edited; reset it before regenerating")
	case errors.Is(err, payslip.ErrNotManual):
		Conflict(w, "Payslip has no manual override to reset")
	case errors.Is(err, payslip.ErrNoSourceData):
		UnprocessableEntity(w, "No attendance data for this month")

	// Advance domain errors
	case errors.Is(err, advance.ErrRequestNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, advance.ErrDuplicateRequest):
		Conflict(w, "A pending or approved advance already exists for this month")
	case errors.Is(err, advance.ErrAlreadyReviewed):
		Conflict(w, "Advance request already reviewed")
	case errors.Is(err, advance.ErrLimitExceeded):
		BadRequest(w, "Advance amount exceeds the limit for this employment type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
