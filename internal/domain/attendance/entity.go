package attendance

import "time"

type WorkType string

const (
	WorkTypeNormal  WorkType = "normal"
	WorkTypeNight   WorkType = "night"
	WorkTypeAnnual  WorkType = "annual" // paid annual leave taken this day
	WorkTypeAbsent  WorkType = "absent"
	WorkTypeHoliday WorkType = "holiday"
	WorkTypeEarly   WorkType = "early" // left early, still counts as attended
)

// TimeRequired reports whether the work type needs clock times to be
// meaningful.
func (t WorkType) TimeRequired() bool {
	return t == WorkTypeNormal || t == WorkTypeNight
}

// CountsAsAttended reports whether the work type counts toward
// full-attendance checks for monthly leave grants.
func (t WorkType) CountsAsAttended() bool {
	switch t {
	case WorkTypeNormal, WorkTypeNight, WorkTypeAnnual:
		return true
	}
	return false
}

// Source tags who entered a record. Higher-precedence sources must not
// be overwritten by bulk import.
type Source string

const (
	SourceAdmin    Source = "admin"
	SourceEmployee Source = "employee"
	SourceImport   Source = "import"
)

// Precedence is the single authoritative ordering of record sources.
func (s Source) Precedence() int {
	switch s {
	case SourceAdmin:
		return 3
	case SourceEmployee:
		return 2
	case SourceImport:
		return 1
	}
	return 0
}

// Record is one employee-day of attendance with its derived hour buckets.
type Record struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	ClockIn    *string   `json:"clock_in"`  // HH:MM
	ClockOut   *string   `json:"clock_out"` // HH:MM
	WorkType   WorkType  `json:"work_type"`
	Source     Source    `json:"source"`

	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`
	HolidayHours  float64 `json:"holiday_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HourSummary aggregates a month of hour buckets for one employee.
type HourSummary struct {
	EmployeeID    string  `json:"employee_id"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`
	HolidayHours  float64 `json:"holiday_hours"`
}
