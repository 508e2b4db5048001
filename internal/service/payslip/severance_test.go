package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
)

func (env *payslipTestEnv) seedPayslip(t *testing.T, employeeID, month string, gross int64) {
	t.Helper()
	_, err := env.payslips.Create(context.Background(), payslip.Payslip{
		EmployeeID: employeeID,
		Month:      month,
		Gross:      gross,
		Net:        gross,
	})
	require.NoError(t, err)
}

func TestCalculator_EstimateSeverance(t *testing.T) {
	env := newPayslipTestEnv()
	ctx := context.Background()

	// Hired exactly two years before the fixed clock (2026-07-01).
	hire := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	emp, err := env.employees.Create(ctx, employee.Employee{
		Name:           "Long Tenure",
		BirthDate:      "880303",
		EmploymentType: employee.EmploymentTypeWeekly,
		HireDate:       &hire,
		IsActive:       true,
	})
	require.NoError(t, err)

	env.seedPayslip(t, emp.ID, "2026-04", 2_100_000)
	env.seedPayslip(t, emp.ID, "2026-05", 2_100_000)
	env.seedPayslip(t, emp.ID, "2026-06", 2_100_000)
	env.seedPayslip(t, emp.ID, "2026-03", 9_000_000) // outside the 3-month window

	est, err := env.calc.EstimateSeverance(ctx, emp.ID)
	require.NoError(t, err)

	assert.True(t, est.Eligible)
	assert.Empty(t, est.Reason)
	assert.Equal(t, 730, est.ServiceDays)
	assert.Equal(t, 2.0, est.ServiceYears)
	assert.Equal(t, int64(6_300_000), est.TotalGross3M)
	assert.Equal(t, int64(70_000), est.AvgDailyWage)
	// 70,000 x 30 x 730 / 365
	assert.Equal(t, int64(4_200_000), est.Severance)
}

func TestCalculator_EstimateSeverance_UnderOneYear(t *testing.T) {
	env := newPayslipTestEnv()
	ctx := context.Background()

	hire := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	emp, err := env.employees.Create(ctx, employee.Employee{
		Name:           "New Hire",
		BirthDate:      "990909",
		EmploymentType: employee.EmploymentTypeWeekly,
		HireDate:       &hire,
		IsActive:       true,
	})
	require.NoError(t, err)

	est, err := env.calc.EstimateSeverance(ctx, emp.ID)
	require.NoError(t, err)

	assert.False(t, est.Eligible)
	assert.Contains(t, est.Reason, "under one year")
	assert.Equal(t, int64(0), est.Severance)
}

func TestCalculator_EstimateSeverance_InsufficientHistory(t *testing.T) {
	env := newPayslipTestEnv()
	ctx := context.Background()

	hire := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	emp, err := env.employees.Create(ctx, employee.Employee{
		Name:           "Sparse History",
		BirthDate:      "910101",
		EmploymentType: employee.EmploymentTypeWeekly,
		HireDate:       &hire,
		IsActive:       true,
	})
	require.NoError(t, err)
	env.seedPayslip(t, emp.ID, "2026-06", 2_100_000)

	est, err := env.calc.EstimateSeverance(ctx, emp.ID)
	require.NoError(t, err)

	assert.True(t, est.Eligible)
	assert.Equal(t, 1, est.RecentMonths)
	assert.Contains(t, est.Reason, "insufficient history")
	assert.Equal(t, int64(0), est.Severance)
}

func TestCalculator_EstimateSeverance_NoHireDate(t *testing.T) {
	env := newPayslipTestEnv()
	ctx := context.Background()

	emp, err := env.employees.Create(ctx, employee.Employee{
		Name:           "No Hire Date",
		BirthDate:      "920202",
		EmploymentType: employee.EmploymentTypeWeekly,
		IsActive:       true,
	})
	require.NoError(t, err)

	_, err = env.calc.EstimateSeverance(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrNoHireDate)
}

func TestCalculator_EstimateSeverance_ResignDateBoundsPeriod(t *testing.T) {
	env := newPayslipTestEnv()
	ctx := context.Background()

	hire := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	resign := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	emp, err := env.employees.Create(ctx, employee.Employee{
		Name:           "Resigned",
		BirthDate:      "930303",
		EmploymentType: employee.EmploymentTypeWeekly,
		HireDate:       &hire,
		ResignDate:     &resign,
		IsActive:       false,
	})
	require.NoError(t, err)

	est, err := env.calc.EstimateSeverance(ctx, emp.ID)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-01", est.EndDate)
	assert.Equal(t, 549, est.ServiceDays) // 2024-07-01 through 2026-01-01
	assert.True(t, est.Eligible)
}
