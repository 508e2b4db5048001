package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
	"github.com/ashaile/humetix-backend-go/internal/repository/memory"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
)

type leaveTestEnv struct {
	svc       *Service
	accruals  *memory.LeaveAccrualRepository
	usages    *memory.LeaveUsageRepository
	balances  *memory.LeaveBalanceRepository
	employees *memory.EmployeeRepository
	records   *memory.AttendanceRepository
}

func newLeaveTestEnv() *leaveTestEnv {
	env := &leaveTestEnv{
		accruals:  memory.NewLeaveAccrualRepository(),
		usages:    memory.NewLeaveUsageRepository(),
		balances:  memory.NewLeaveBalanceRepository(),
		employees: memory.NewEmployeeRepository(),
		records:   memory.NewAttendanceRepository(),
	}
	resolver := calendarService.NewResolver(memory.NewCalendarRepository(), nil)
	env.svc = NewService(memory.NewStore(), env.accruals, env.usages, env.balances,
		env.employees, env.records, resolver)
	return env
}

func (env *leaveTestEnv) createEmployee(t *testing.T, hireDate string) employee.Employee {
	t.Helper()
	emp := employee.Employee{
		Name:           "Test Worker",
		BirthDate:      "900101",
		EmploymentType: employee.EmploymentTypeWeekly,
		IsActive:       true,
	}
	if hireDate != "" {
		hire, err := time.Parse("2006-01-02", hireDate)
		require.NoError(t, err)
		emp.HireDate = &hire
	}
	created, err := env.employees.Create(context.Background(), emp)
	require.NoError(t, err)
	return created
}

func (env *leaveTestEnv) seedAccrual(t *testing.T, employeeID string, year, month int, days float64) leave.Accrual {
	t.Helper()
	a, err := env.accruals.Create(context.Background(), leave.Accrual{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Type:       leave.AccrualTypeManual,
		Days:       days,
		Remaining:  days,
	})
	require.NoError(t, err)
	return a
}

func TestEntitledDays(t *testing.T) {
	hire := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ref  time.Time
		want int
	}{
		{"five months", time.Date(2020, 8, 15, 0, 0, 0, 0, time.UTC), 5},
		{"eleven month cap before a year", time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC), 11},
		{"first anniversary", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), 15},
		{"two years", time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), 15},
		{"three years", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), 16},
		{"five years", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 17},
		{"twenty-five year cap", time.Date(2045, 3, 1, 0, 0, 0, 0, time.UTC), 25},
		{"before hire", time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EntitledDays(hire, tc.ref))
		})
	}
}

func TestService_GenerateAccruals_BulkGrant(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2024-03-15")

	created, err := env.svc.GenerateAccruals(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	accruals, err := env.accruals.ListByEmployeeYear(ctx, emp.ID, 2026)
	require.NoError(t, err)
	require.Len(t, accruals, 1)
	assert.Equal(t, 0, accruals[0].Month)
	assert.Equal(t, leave.AccrualTypeAnnualBulk, accruals[0].Type)
	assert.Equal(t, 15.0, accruals[0].Days)

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 15.0, balance.Entitled)
	assert.Equal(t, 15.0, balance.Remaining)

	// Re-running fills no gaps and creates nothing.
	created, err = env.svc.GenerateAccruals(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestService_GenerateAccruals_FirstYearMonthly(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-02-10")

	created, err := env.svc.GenerateAccruals(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 10, created)

	accruals, err := env.accruals.ListByEmployeeYear(ctx, emp.ID, 2026)
	require.NoError(t, err)
	require.Len(t, accruals, 10)
	assert.Equal(t, 3, accruals[0].Month)
	assert.Equal(t, 12, accruals[9].Month)
	for _, a := range accruals {
		assert.Equal(t, leave.AccrualTypeMonthly, a.Type)
		assert.Equal(t, 1.0, a.Days)
	}
}

func TestService_GenerateAccruals_ConversionYearNetting(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2025-06-01")

	created, err := env.svc.GenerateAccruals(ctx, emp.ID, 2025)
	require.NoError(t, err)
	assert.Equal(t, 6, created) // July through December

	created, err = env.svc.GenerateAccruals(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	accruals, err := env.accruals.ListByEmployeeYear(ctx, emp.ID, 2026)
	require.NoError(t, err)
	require.Len(t, accruals, 1)
	// 15 entitled minus the 6 first-year monthly grants already given.
	assert.Equal(t, 9.0, accruals[0].Days)
}

func TestService_GenerateAccruals_NoHireDate(t *testing.T) {
	env := newLeaveTestEnv()
	emp := env.createEmployee(t, "")

	created, err := env.svc.GenerateAccruals(context.Background(), emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestService_RegisterUsage_FIFOAcrossAccruals(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-01")
	first := env.seedAccrual(t, emp.ID, 2026, 1, 1)
	second := env.seedAccrual(t, emp.ID, 2026, 2, 1)

	created, err := env.svc.RegisterUsage(ctx, emp.ID, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 1.5, "family event")
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, 1.0, created[0].Days)
	require.NotNil(t, created[0].AccrualID)
	assert.Equal(t, first.ID, *created[0].AccrualID)
	assert.Equal(t, 0.5, created[1].Days)
	require.NotNil(t, created[1].AccrualID)
	assert.Equal(t, second.ID, *created[1].AccrualID)

	a1, err := env.accruals.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a1.Remaining)
	a2, err := env.accruals.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, a2.Remaining)

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2.0, balance.Entitled)
	assert.Equal(t, 1.5, balance.Used)
	assert.Equal(t, 0.5, balance.Remaining)
}

func TestService_RegisterUsage_Overdraft(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-01")
	env.seedAccrual(t, emp.ID, 2026, 1, 1)

	created, err := env.svc.RegisterUsage(ctx, emp.ID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 2, "medical")
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Nil(t, created[1].AccrualID)
	assert.Equal(t, 1.0, created[1].Days)
	assert.Contains(t, created[1].Description, "overdraft")

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2.0, balance.Used)
	assert.Equal(t, 0.0, balance.Remaining)
}

func TestService_DeleteUsage_RestoresAccrual(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-01")
	accrual := env.seedAccrual(t, emp.ID, 2026, 1, 1)

	created, err := env.svc.RegisterUsage(ctx, emp.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 1, "")
	require.NoError(t, err)
	require.Len(t, created, 1)

	require.NoError(t, env.svc.DeleteUsage(ctx, created[0].ID))

	restored, err := env.accruals.GetByID(ctx, accrual.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, restored.Remaining)

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Used)
	assert.Equal(t, 1.0, balance.Remaining)
}

func TestService_DeleteAccrual_DetachesUsages(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-01")
	accrual := env.seedAccrual(t, emp.ID, 2026, 1, 1)

	created, err := env.svc.RegisterUsage(ctx, emp.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 1, "")
	require.NoError(t, err)
	require.Len(t, created, 1)

	require.NoError(t, env.svc.DeleteAccrual(ctx, accrual.ID))

	_, err = env.accruals.GetByID(ctx, accrual.ID)
	assert.ErrorIs(t, err, leave.ErrAccrualNotFound)

	detached, err := env.usages.GetByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Nil(t, detached.AccrualID)

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Entitled)
	assert.Equal(t, 1.0, balance.Used)
	assert.Equal(t, 0.0, balance.Remaining)
}

func (env *leaveTestEnv) fillMonth(t *testing.T, employeeID string, year int, month time.Month, skipDates ...string) {
	t.Helper()
	skip := make(map[string]bool, len(skipDates))
	for _, d := range skipDates {
		skip[d] = true
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := from; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if skip[d.Format("2006-01-02")] {
			continue
		}
		_, err := env.records.Create(context.Background(), attendance.Record{
			EmployeeID: employeeID,
			Date:       d,
			WorkType:   attendance.WorkTypeNormal,
		})
		require.NoError(t, err)
	}
}

func TestService_AutoGenerateFromAttendance(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-05")
	env.svc.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	// April fully attended, May has one scheduled day missed, June is
	// the in-progress month and must be skipped.
	env.fillMonth(t, emp.ID, 2026, time.April)
	env.fillMonth(t, emp.ID, 2026, time.May, "2026-05-06")
	env.fillMonth(t, emp.ID, 2026, time.June)

	created, err := env.svc.AutoGenerateFromAttendance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	accruals, err := env.accruals.ListByEmployeeYear(ctx, emp.ID, 2026)
	require.NoError(t, err)
	require.Len(t, accruals, 1)
	assert.Equal(t, 4, accruals[0].Month)
	assert.Equal(t, leave.AccrualTypeAutoMonthly, accruals[0].Type)
	assert.Equal(t, 1.0, accruals[0].Days)

	// Existing months are protected on re-run.
	created, err = env.svc.AutoGenerateFromAttendance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestService_ImportAttendanceUsages(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-01")
	accrual := env.seedAccrual(t, emp.ID, 2026, 1, 2)

	for _, d := range []string{"2026-03-02", "2026-03-03"} {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		_, err = env.records.Create(ctx, attendance.Record{
			EmployeeID: emp.ID,
			Date:       day,
			WorkType:   attendance.WorkTypeAnnual,
		})
		require.NoError(t, err)
	}

	imported, err := env.svc.ImportAttendanceUsages(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	drained, err := env.accruals.GetByID(ctx, accrual.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, drained.Remaining)

	// Dates already converted are skipped.
	imported, err = env.svc.ImportAttendanceUsages(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, imported)
}

func TestService_RecomputeBalance_PriorYearCarryover(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2024-01-01")
	prior := env.seedAccrual(t, emp.ID, 2025, 0, 15)
	prior.Remaining = 2
	require.NoError(t, env.accruals.Update(ctx, prior))
	env.seedAccrual(t, emp.ID, 2026, 0, 15)

	require.NoError(t, env.svc.RecomputeBalance(ctx, emp.ID, 2026))

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 15.0, balance.Entitled)
	assert.Equal(t, 2.0, balance.Carryover)
	assert.Equal(t, 17.0, balance.Remaining)
}

func TestService_SyncAll(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2026-01-05")
	env.svc.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }
	env.fillMonth(t, emp.ID, 2026, time.April)

	result, err := env.svc.SyncAll(ctx, 2026, true)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.AutoCreated)
	assert.Equal(t, 0, result.UsagesAdded)

	balance, err := env.svc.Balance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1.0, balance.Entitled)
}

func TestService_EmployeeDetail(t *testing.T) {
	env := newLeaveTestEnv()
	ctx := context.Background()
	emp := env.createEmployee(t, "2024-01-01")
	prior := env.seedAccrual(t, emp.ID, 2025, 0, 15)
	prior.Remaining = 1
	require.NoError(t, env.accruals.Update(ctx, prior))
	env.seedAccrual(t, emp.ID, 2026, 3, 1)

	_, err := env.svc.RegisterUsage(ctx, emp.ID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 1, "")
	require.NoError(t, err)

	detail, err := env.svc.EmployeeDetail(ctx, emp.ID, 2026)
	require.NoError(t, err)

	// The usage drained the 2025 carryover accrual first, so no
	// carryover remains and the current-year grant is untouched.
	assert.Equal(t, 1.0, detail.Summary.Entitled)
	assert.Equal(t, 0.0, detail.Summary.Carryover)
	assert.Equal(t, 1.0, detail.Summary.Used)
	assert.Equal(t, 0.0, detail.Summary.Remaining)
	assert.Equal(t, 100, detail.Summary.UsedPct)
	assert.True(t, detail.MonthlyGrid[3].Accrued)
	assert.Equal(t, 1.0, detail.MonthlyGrid[3].Remaining)
	assert.False(t, detail.MonthlyGrid[4].Accrued)
	assert.Empty(t, detail.CarryoverAccruals)
	assert.Equal(t, 0.0, detail.CarryoverTotal)
}
