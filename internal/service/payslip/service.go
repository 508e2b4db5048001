package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ashaile/humetix-backend-go/internal/config"
	"github.com/ashaile/humetix-backend-go/internal/domain/advance"
	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
	attendanceService "github.com/ashaile/humetix-backend-go/internal/service/attendance"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
	wageService "github.com/ashaile/humetix-backend-go/internal/service/wage"
)

// Calculator turns a month of decomposed attendance hours into payslips:
// pay components by salary mode, absence deductions, statutory
// withholdings and the advance deduction.
type Calculator struct {
	payslips  payslip.Repository
	records   attendance.Repository
	advances  advance.Repository
	employees employee.Repository
	wages     *wageService.Resolver
	resolver  *calendarService.Resolver
	policy    config.PolicyConfig
	now       func() time.Time
}

func NewCalculator(
	payslips payslip.Repository,
	records attendance.Repository,
	advances advance.Repository,
	employees employee.Repository,
	wages *wageService.Resolver,
	resolver *calendarService.Resolver,
	policy config.PolicyConfig,
) *Calculator {
	return &Calculator{
		payslips:  payslips,
		records:   records,
		advances:  advances,
		employees: employees,
		wages:     wages,
		resolver:  resolver,
		policy:    policy,
		now:       time.Now,
	}
}

// BatchResult reports one GenerateMonth run.
type BatchResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// GenerateMonth computes payslips for every employee with attendance in
// the month. Existing payslips are updated in place; hand-edited ones
// are skipped, never overwritten.
func (c *Calculator) GenerateMonth(ctx context.Context, month, fallbackMode string) (BatchResult, error) {
	from, to, err := attendanceService.MonthRange(month)
	if err != nil {
		return BatchResult{}, err
	}
	summaries, err := c.records.SummarizeBetween(ctx, from, to)
	if err != nil {
		return BatchResult{}, fmt.Errorf("summarize attendance: %w", err)
	}
	if len(summaries) == 0 {
		return BatchResult{}, payslip.ErrNoSourceData
	}

	var result BatchResult
	for _, sum := range summaries {
		computed, err := c.compute(ctx, sum.EmployeeID, month, sum, fallbackMode)
		if err != nil {
			slog.Warn("payslip computation failed",
				slog.String("employee_id", sum.EmployeeID),
				slog.String("month", month),
				slog.Any("error", err))
			continue
		}

		existing, err := c.payslips.GetByEmployeeMonth(ctx, sum.EmployeeID, month)
		switch {
		case err == nil:
			if existing.IsManual {
				result.Skipped++
				continue
			}
			computed.ID = existing.ID
			computed.CreatedAt = existing.CreatedAt
			if err := c.payslips.Update(ctx, computed); err != nil {
				return result, fmt.Errorf("update payslip: %w", err)
			}
			result.Updated++
		case errors.Is(err, payslip.ErrPayslipNotFound):
			if _, err := c.payslips.Create(ctx, computed); err != nil {
				return result, fmt.Errorf("create payslip: %w", err)
			}
			result.Created++
		default:
			return result, err
		}
	}

	slog.Info("payslip batch generated",
		slog.String("month", month),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

// GenerateSingle recomputes one employee's payslip for the month. A
// hand-edited payslip must be reset first.
func (c *Calculator) GenerateSingle(ctx context.Context, employeeID, month, fallbackMode string) (payslip.Payslip, error) {
	sum, err := c.summarizeEmployee(ctx, employeeID, month)
	if err != nil {
		return payslip.Payslip{}, err
	}

	computed, err := c.compute(ctx, employeeID, month, sum, fallbackMode)
	if err != nil {
		return payslip.Payslip{}, err
	}

	existing, err := c.payslips.GetByEmployeeMonth(ctx, employeeID, month)
	switch {
	case err == nil:
		if existing.IsManual {
			return payslip.Payslip{}, payslip.ErrManualOverride
		}
		computed.ID = existing.ID
		computed.CreatedAt = existing.CreatedAt
		if err := c.payslips.Update(ctx, computed); err != nil {
			return payslip.Payslip{}, fmt.Errorf("update payslip: %w", err)
		}
		return computed, nil
	case errors.Is(err, payslip.ErrPayslipNotFound):
		created, err := c.payslips.Create(ctx, computed)
		if err != nil {
			return payslip.Payslip{}, fmt.Errorf("create payslip: %w", err)
		}
		return created, nil
	default:
		return payslip.Payslip{}, err
	}
}

// ListMonth returns the month's payslips.
func (c *Calculator) ListMonth(ctx context.Context, month string) ([]payslip.Payslip, error) {
	return c.payslips.ListByMonth(ctx, month)
}

// ManualEdit carries hand-entered component overrides. Nil fields keep
// the stored value.
type ManualEdit struct {
	BaseSalary             *int64 `json:"base_salary,omitempty"`
	WeeklyHolidayPay       *int64 `json:"weekly_holiday_pay,omitempty"`
	OvertimePay            *int64 `json:"overtime_pay,omitempty"`
	NightPay               *int64 `json:"night_pay,omitempty"`
	HolidayPay             *int64 `json:"holiday_pay,omitempty"`
	AbsentDeduction        *int64 `json:"absent_deduction,omitempty"`
	WeeklyHolidayDeduction *int64 `json:"weekly_holiday_deduction,omitempty"`
	Tax                    *int64 `json:"tax,omitempty"`
	Pension                *int64 `json:"pension,omitempty"`
	HealthInsurance        *int64 `json:"health_insurance,omitempty"`
	LongTermCare           *int64 `json:"long_term_care,omitempty"`
	EmploymentIns          *int64 `json:"employment_ins,omitempty"`
	AdvanceDeduction       *int64 `json:"advance_deduction,omitempty"`
}

// Edit applies hand-entered components, recomputes the derived totals
// and marks the payslip manual so batch runs leave it alone.
func (c *Calculator) Edit(ctx context.Context, employeeID, month string, edit ManualEdit) (payslip.Payslip, error) {
	p, err := c.payslips.GetByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payslip.Payslip{}, err
	}

	apply := func(dst *int64, src *int64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.BaseSalary, edit.BaseSalary)
	apply(&p.WeeklyHolidayPay, edit.WeeklyHolidayPay)
	apply(&p.OvertimePay, edit.OvertimePay)
	apply(&p.NightPay, edit.NightPay)
	apply(&p.HolidayPay, edit.HolidayPay)
	apply(&p.AbsentDeduction, edit.AbsentDeduction)
	apply(&p.WeeklyHolidayDeduction, edit.WeeklyHolidayDeduction)
	apply(&p.Tax, edit.Tax)
	apply(&p.Pension, edit.Pension)
	apply(&p.HealthInsurance, edit.HealthInsurance)
	apply(&p.LongTermCare, edit.LongTermCare)
	apply(&p.EmploymentIns, edit.EmploymentIns)
	apply(&p.AdvanceDeduction, edit.AdvanceDeduction)

	gross := p.BaseSalary + p.WeeklyHolidayPay + p.OvertimePay + p.NightPay + p.HolidayPay -
		p.AbsentDeduction - p.WeeklyHolidayDeduction
	if gross < 0 {
		gross = 0
	}
	p.Gross = gross
	p.InsuranceTotal = p.Pension + p.HealthInsurance + p.LongTermCare + p.EmploymentIns
	p.Net = p.Gross - p.Tax - p.InsuranceTotal - p.AdvanceDeduction
	p.IsManual = true

	if err := c.payslips.Update(ctx, p); err != nil {
		return payslip.Payslip{}, fmt.Errorf("update payslip: %w", err)
	}
	return p, nil
}

// Reset recomputes a hand-edited payslip from current attendance and
// advance data and clears the manual flag.
func (c *Calculator) Reset(ctx context.Context, employeeID, month, fallbackMode string) (payslip.Payslip, error) {
	existing, err := c.payslips.GetByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payslip.Payslip{}, err
	}
	if !existing.IsManual {
		return payslip.Payslip{}, payslip.ErrNotManual
	}

	sum, err := c.summarizeEmployee(ctx, employeeID, month)
	if err != nil {
		return payslip.Payslip{}, err
	}
	computed, err := c.compute(ctx, employeeID, month, sum, fallbackMode)
	if err != nil {
		return payslip.Payslip{}, err
	}
	computed.ID = existing.ID
	computed.CreatedAt = existing.CreatedAt
	if err := c.payslips.Update(ctx, computed); err != nil {
		return payslip.Payslip{}, fmt.Errorf("update payslip: %w", err)
	}
	return computed, nil
}

// summarizeEmployee sums one employee's hour buckets for the month.
// A month with no attendance at all is an insufficient-data condition.
func (c *Calculator) summarizeEmployee(ctx context.Context, employeeID, month string) (attendance.HourSummary, error) {
	from, to, err := attendanceService.MonthRange(month)
	if err != nil {
		return attendance.HourSummary{}, err
	}
	records, err := c.records.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return attendance.HourSummary{}, err
	}
	if len(records) == 0 {
		return attendance.HourSummary{}, payslip.ErrNoSourceData
	}
	sum := attendance.HourSummary{EmployeeID: employeeID}
	for _, r := range records {
		sum.TotalHours += r.TotalHours
		sum.OvertimeHours += r.OvertimeHours
		sum.NightHours += r.NightHours
		sum.HolidayHours += r.HolidayHours
	}
	return sum, nil
}

func (c *Calculator) compute(ctx context.Context, employeeID, month string, sum attendance.HourSummary, fallbackMode string) (payslip.Payslip, error) {
	wcfg, err := c.wages.Resolve(ctx, employeeID, nil)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("resolve wage config: %w", err)
	}
	mode := effectiveMode(wcfg, fallbackMode)

	info, err := c.attendanceInfo(ctx, employeeID, month)
	if err != nil {
		return payslip.Payslip{}, err
	}

	pay := calcPay(wcfg, mode, c.policy.MonthlyStandardHours, sum, info)
	absentDed, weeklyDed := calcAbsenceDeductions(wcfg, mode, info)

	gross := pay.Base + pay.WeeklyHoliday + pay.Overtime + pay.Night + pay.Holiday -
		absentDed - weeklyDed
	if gross < 0 {
		gross = 0
	}

	election := employee.InsuranceFlat
	if emp, err := c.employees.GetByID(ctx, employeeID); err == nil {
		election = emp.InsuranceElection()
	}
	ded := c.calcDeductions(gross, election)

	advTotal, err := c.advances.SumApproved(ctx, employeeID, month)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("sum advances: %w", err)
	}

	return payslip.Payslip{
		EmployeeID: employeeID,
		Month:      month,
		SalaryMode: mode,

		TotalHours:    sum.TotalHours,
		OvertimeHours: sum.OvertimeHours,
		NightHours:    sum.NightHours,
		HolidayHours:  sum.HolidayHours,

		BaseSalary:       pay.Base,
		WeeklyHolidayPay: pay.WeeklyHoliday,
		OvertimePay:      pay.Overtime,
		NightPay:         pay.Night,
		HolidayPay:       pay.Holiday,

		AbsentDays:             info.AbsentDays,
		AbsentDeduction:        absentDed,
		WeeklyHolidayDeduction: weeklyDed,

		Gross:            gross,
		Tax:              ded.Tax,
		Pension:          ded.Pension,
		HealthInsurance:  ded.Health,
		LongTermCare:     ded.LongTermCare,
		EmploymentIns:    ded.Employment,
		InsuranceTotal:   ded.InsuranceTotal,
		AdvanceDeduction: advTotal,
		Net:              gross - ded.Tax - ded.InsuranceTotal - advTotal,
	}, nil
}

// effectiveMode decides the salary mode actually applied: a day-rate
// wage type forces the "daily" mode, an explicit calc method wins next,
// then the caller-requested fallback.
func effectiveMode(wcfg wage.Resolved, fallbackMode string) string {
	if wcfg.WageType == wage.WageTypeDaily {
		return "daily"
	}
	switch wcfg.CalcMethod {
	case wage.CalcMethodStandard, wage.CalcMethodDailyBuild, wage.CalcMethodActual:
		return string(wcfg.CalcMethod)
	}
	if fallbackMode == "" {
		return string(wage.CalcMethodStandard)
	}
	return fallbackMode
}

type payComponents struct {
	Base          int64
	WeeklyHoliday int64
	Overtime      int64
	Night         int64
	Holiday       int64
}

func calcPay(wcfg wage.Resolved, mode string, monthlyStdHours float64, sum attendance.HourSummary, info attendanceInfo) payComponents {
	hourly := decimal.NewFromInt(wcfg.HourlyWage)
	total := decimal.NewFromFloat(sum.TotalHours)
	ot := decimal.NewFromFloat(sum.OvertimeHours)
	night := decimal.NewFromFloat(sum.NightHours)
	holiday := decimal.NewFromFloat(sum.HolidayHours)
	otMult := decimal.NewFromFloat(wcfg.OvertimeRate)
	nightPrem := decimal.NewFromFloat(wcfg.NightBonusRate)
	stdWorkHours := decimal.NewFromFloat(wcfg.StandardWorkHours)

	otPayFor := func(rate decimal.Decimal) int64 {
		if wcfg.OvertimeUnit == wage.OvertimeUnitFixed && wcfg.OvertimeFixedAmount > 0 {
			return won(ot.Mul(decimal.NewFromInt(wcfg.OvertimeFixedAmount)))
		}
		return won(ot.Mul(rate).Mul(otMult))
	}

	var pay payComponents
	switch mode {
	case "daily":
		// day-rate pay: total hours converted to day units
		daily := decimal.NewFromInt(wcfg.DailyWage)
		hourlyEquiv := decimal.Zero
		if !stdWorkHours.IsZero() {
			hourlyEquiv = daily.Div(stdWorkHours)
		}
		units := decimal.Zero
		if !stdWorkHours.IsZero() {
			units = total.Div(stdWorkHours)
		}
		pay.Base = won(daily.Mul(units))
		pay.Overtime = otPayFor(hourlyEquiv)
		pay.Night = won(night.Mul(hourlyEquiv).Mul(nightPrem))
		pay.Holiday = won(holiday.Mul(hourlyEquiv).Mul(otMult))

	case "daily_build":
		// build up from zero: attended days and full-attendance weeks
		dailyWage := hourly.Mul(stdWorkHours)
		pay.Base = won(dailyWage.Mul(decimal.NewFromInt(int64(info.AttendedDays))))
		pay.WeeklyHoliday = won(dailyWage.Mul(decimal.NewFromInt(int64(info.FullWeeks))))
		pay.Overtime = otPayFor(hourly)
		pay.Night = won(night.Mul(hourly).Mul(nightPrem))
		pay.Holiday = won(holiday.Mul(hourly).Mul(otMult))

	default:
		if mode == "actual" {
			pay.Base = won(hourly.Mul(total))
		} else {
			pay.Base = won(hourly.Mul(decimal.NewFromFloat(monthlyStdHours)))
		}
		pay.Overtime = otPayFor(hourly)
		pay.Night = won(night.Mul(hourly).Mul(nightPrem))
		pay.Holiday = won(holiday.Mul(hourly).Mul(otMult))
	}
	return pay
}

// calcAbsenceDeductions applies only in standard mode; the other modes
// already price absences into the base.
func calcAbsenceDeductions(wcfg wage.Resolved, mode string, info attendanceInfo) (absentDed, weeklyDed int64) {
	if mode != "standard" {
		return 0, 0
	}
	if info.AbsentDays == 0 && info.NonFullWeeks == 0 {
		return 0, 0
	}
	dayPay := decimal.NewFromInt(wcfg.HourlyWage).Mul(decimal.NewFromFloat(wcfg.StandardWorkHours))
	absentDed = dayPay.Mul(decimal.NewFromInt(int64(info.AbsentDays))).IntPart()
	weeklyDed = dayPay.Mul(decimal.NewFromInt(int64(info.NonFullWeeks))).IntPart()
	return absentDed, weeklyDed
}

type deductions struct {
	Tax            int64
	Pension        int64
	Health         int64
	LongTermCare   int64
	Employment     int64
	InsuranceTotal int64
}

// calcDeductions: full enrollment withholds the four insurances and no
// tax; flat withholds income tax only.
func (c *Calculator) calcDeductions(gross int64, election employee.InsuranceType) deductions {
	g := decimal.NewFromInt(gross)
	var d deductions
	if election == employee.InsuranceFull {
		d.Pension = won(g.Mul(decimal.NewFromFloat(c.policy.PensionRate)))
		d.Health = won(g.Mul(decimal.NewFromFloat(c.policy.HealthRate)))
		d.LongTermCare = won(decimal.NewFromInt(d.Health).Mul(decimal.NewFromFloat(c.policy.LongTermCareRate)))
		d.Employment = won(g.Mul(decimal.NewFromFloat(c.policy.EmploymentRate)))
	} else {
		d.Tax = won(g.Mul(decimal.NewFromFloat(c.policy.TaxRate)))
	}
	d.InsuranceTotal = d.Pension + d.Health + d.LongTermCare + d.Employment
	return d
}

func won(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
