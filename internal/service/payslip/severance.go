package payslip

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
)

// EstimateSeverance computes the statutory severance estimate:
// average daily wage from the last three payslip grosses over 90 days,
// times 30 days per service year. Under one year of service or with
// fewer than three payslips the result is a structured ineligible or
// insufficient-history answer, never a bare zero.
func (c *Calculator) EstimateSeverance(ctx context.Context, employeeID string) (payslip.SeveranceEstimate, error) {
	emp, err := c.employees.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.SeveranceEstimate{}, err
	}
	if emp.HireDate == nil {
		return payslip.SeveranceEstimate{}, employee.ErrNoHireDate
	}

	now := c.now()
	end := now
	if emp.ResignDate != nil {
		end = *emp.ResignDate
	}
	serviceDays := emp.ServiceDays(now)

	est := payslip.SeveranceEstimate{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		ServiceDays:  serviceDays,
		ServiceYears: math.Round(float64(serviceDays)/365*10) / 10,
	}

	if serviceDays < 365 {
		est.Reason = "ineligible: under one year of service"
		return est, nil
	}
	est.Eligible = true

	recent, err := c.payslips.ListRecentByEmployee(ctx, employeeID, 3)
	if err != nil {
		return payslip.SeveranceEstimate{}, err
	}
	est.RecentMonths = len(recent)
	if len(recent) < 3 {
		est.Reason = "insufficient history: three months of payslips required"
		return est, nil
	}

	var totalGross int64
	for _, p := range recent {
		totalGross += p.Gross
	}
	est.TotalGross3M = totalGross

	avgDaily := decimal.NewFromInt(totalGross).Div(decimal.NewFromInt(90))
	est.AvgDailyWage = won(avgDaily)
	est.Severance = won(avgDaily.
		Mul(decimal.NewFromInt(30)).
		Mul(decimal.NewFromInt(int64(serviceDays))).
		Div(decimal.NewFromInt(365)))
	return est, nil
}
