package payslip

import "time"

// Payslip is one employee-month of computed pay. Amounts are won.
type Payslip struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM
	SalaryMode string `json:"salary_mode"`

	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`
	HolidayHours  float64 `json:"holiday_hours"`

	BaseSalary       int64 `json:"base_salary"`
	WeeklyHolidayPay int64 `json:"weekly_holiday_pay"`
	OvertimePay      int64 `json:"overtime_pay"`
	NightPay         int64 `json:"night_pay"`
	HolidayPay       int64 `json:"holiday_pay"`

	AbsentDays             int   `json:"absent_days"`
	AbsentDeduction        int64 `json:"absent_deduction"`
	WeeklyHolidayDeduction int64 `json:"weekly_holiday_deduction"`

	Gross            int64 `json:"gross"`
	Tax              int64 `json:"tax"`
	Pension          int64 `json:"pension"`
	HealthInsurance  int64 `json:"health_insurance"`
	LongTermCare     int64 `json:"long_term_care"`
	EmploymentIns    int64 `json:"employment_insurance"`
	InsuranceTotal   int64 `json:"insurance_total"`
	AdvanceDeduction int64 `json:"advance_deduction"`
	Net              int64 `json:"net"`

	// IsManual marks hand-edited figures that batch generation must not
	// overwrite.
	IsManual bool `json:"is_manual"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeveranceEstimate is the one-shot statutory severance result.
type SeveranceEstimate struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	HireDate     string  `json:"hire_date"`
	EndDate      string  `json:"end_date,omitempty"`
	ServiceDays  int     `json:"service_days"`
	ServiceYears float64 `json:"service_years"`
	Eligible     bool    `json:"eligible"`
	// Reason explains a zero severance: tenure under one year or not
	// enough payslip history.
	Reason       string `json:"reason,omitempty"`
	RecentMonths int    `json:"recent_months"`
	TotalGross3M int64  `json:"total_gross_3m"`
	AvgDailyWage int64  `json:"avg_daily_wage"`
	Severance    int64  `json:"severance"`
}
