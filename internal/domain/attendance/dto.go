package attendance

import (
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
)

// SubmitRequest is one attendance entry, already parsed from the form
// surface. Dates are YYYY-MM-DD, clock times HH:MM.
type SubmitRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ClockIn    string `json:"clock_in,omitempty"`
	ClockOut   string `json:"clock_out,omitempty"`
	WorkType   string `json:"work_type"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	workType := WorkType(r.WorkType)
	switch workType {
	case WorkTypeNormal, WorkTypeNight, WorkTypeAnnual, WorkTypeAbsent, WorkTypeHoliday, WorkTypeEarly:
	default:
		errs = append(errs, validator.ValidationError{Field: "work_type", Message: "unknown work type"})
	}

	if workType.TimeRequired() {
		if !validator.IsValidClockTime(r.ClockIn) {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be HH:MM"})
		}
		if !validator.IsValidClockTime(r.ClockOut) {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be HH:MM"})
		}
	} else {
		if r.ClockIn != "" && !validator.IsValidClockTime(r.ClockIn) {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be HH:MM"})
		}
		if r.ClockOut != "" && !validator.IsValidClockTime(r.ClockOut) {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportRow is one row of a bulk attendance import.
type ImportRow struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ClockIn    string `json:"clock_in,omitempty"`
	ClockOut   string `json:"clock_out,omitempty"`
	WorkType   string `json:"work_type"`
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}
