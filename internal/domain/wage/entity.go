package wage

import "time"

// Scope is the granularity at which a pay-rate parameter can be set.
// Resolution walks employee -> site -> system -> hard defaults.
type Scope string

const (
	ScopeSystem   Scope = "system"
	ScopeSite     Scope = "site"
	ScopeEmployee Scope = "employee"
)

type WageType string

const (
	WageTypeHourly WageType = "hourly"
	WageTypeDaily  WageType = "daily" // day-rate ("gongsu") pay
)

type OvertimeUnit string

const (
	OvertimeUnitRate  OvertimeUnit = "rate"  // multiplier on the hourly wage
	OvertimeUnitFixed OvertimeUnit = "fixed" // fixed amount per overtime hour
)

type CalcMethod string

const (
	CalcMethodStandard   CalcMethod = "standard"    // hourly x monthly standard hours
	CalcMethodDailyBuild CalcMethod = "daily_build" // build up from attended days
	CalcMethodActual     CalcMethod = "actual"      // hourly x actual hours
)

// Config is one partial layer of wage settings. A nil field defers to
// the next-broader scope.
type Config struct {
	ID       string  `json:"id"`
	Scope    Scope   `json:"scope"`
	TargetID *string `json:"target_id"` // site or employee ID; nil for system scope

	WageType            *WageType     `json:"wage_type"`
	HourlyWage          *int64        `json:"hourly_wage"`
	DailyWage           *int64        `json:"daily_wage"`
	StandardWorkHours   *float64      `json:"standard_work_hours"`
	BreakHours          *float64      `json:"break_hours"`
	OvertimeRate        *float64      `json:"overtime_rate"`
	NightBonusRate      *float64      `json:"night_bonus_rate"`
	UnpaidHolidayRate   *float64      `json:"unpaid_holiday_rate"`
	PaidHolidayRate     *float64      `json:"paid_holiday_rate"`
	PaidHolidayOTRate   *float64      `json:"paid_holiday_ot_rate"`
	OvertimeUnit        *OvertimeUnit `json:"overtime_unit"`
	OvertimeFixedAmount *int64        `json:"overtime_fixed_amount"`
	CalcMethod          *CalcMethod   `json:"calc_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Resolved is a fully-populated wage configuration. Every field is
// guaranteed non-zero-value by the hard-coded default tier.
type Resolved struct {
	WageType            WageType     `json:"wage_type"`
	HourlyWage          int64        `json:"hourly_wage"`
	DailyWage           int64        `json:"daily_wage"` // 0 when no day rate is configured
	StandardWorkHours   float64      `json:"standard_work_hours"`
	BreakHours          float64      `json:"break_hours"`
	OvertimeRate        float64      `json:"overtime_rate"`
	NightBonusRate      float64      `json:"night_bonus_rate"`
	UnpaidHolidayRate   float64      `json:"unpaid_holiday_rate"`
	PaidHolidayRate     float64      `json:"paid_holiday_rate"`
	PaidHolidayOTRate   float64      `json:"paid_holiday_ot_rate"`
	OvertimeUnit        OvertimeUnit `json:"overtime_unit"`
	OvertimeFixedAmount int64        `json:"overtime_fixed_amount"`
	CalcMethod          CalcMethod   `json:"calc_method"` // empty means caller-supplied mode applies
}

// Defaults is the terminal tier of the resolution chain.
func Defaults() Resolved {
	return Resolved{
		WageType:          WageTypeHourly,
		HourlyWage:        10_320, // 2026 statutory minimum wage
		StandardWorkHours: 8.0,
		BreakHours:        1.0,
		OvertimeRate:      1.5,
		NightBonusRate:    0.5,
		UnpaidHolidayRate: 1.5,
		PaidHolidayRate:   1.5,
		PaidHolidayOTRate: 2.0,
		OvertimeUnit:      OvertimeUnitRate,
	}
}

// FieldSource attributes one resolved field to the layer that supplied
// it, for the admin inspection surface.
type FieldSource struct {
	Field  string      `json:"field"`
	Value  interface{} `json:"value"`
	Source string      `json:"source"` // employee | site | system | default
}
