package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	// ErrManualOverride: the payslip was hand-edited; batch generation
	// must not overwrite it.
	ErrManualOverride = errors.New("payslip has manual override")
	ErrNotManual      = errors.New("payslip has no manual override to reset")
	ErrNoSourceData   = errors.New("no attendance data for this month")
)
