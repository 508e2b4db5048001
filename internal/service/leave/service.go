package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
)

// Service is the leave ledger: accrual generation, FIFO consumption,
// and the derived balance cache. Every mutation runs as one atomic unit
// and ends with a balance recompute.
type Service struct {
	tx         database.TxRunner
	accruals   leave.AccrualRepository
	usages     leave.UsageRepository
	balances   leave.BalanceRepository
	employees  employee.Repository
	attendance attendance.Repository
	resolver   *calendarService.Resolver

	now func() time.Time
}

func NewService(
	tx database.TxRunner,
	accruals leave.AccrualRepository,
	usages leave.UsageRepository,
	balances leave.BalanceRepository,
	employees employee.Repository,
	attendanceRepo attendance.Repository,
	resolver *calendarService.Resolver,
) *Service {
	return &Service{
		tx:         tx,
		accruals:   accruals,
		usages:     usages,
		balances:   balances,
		employees:  employees,
		attendance: attendanceRepo,
		resolver:   resolver,
		now:        time.Now,
	}
}

// EntitledDays computes the statutory annual leave entitlement:
// under one year of tenure, one day per full month capped at 11;
// from one year on, 15 days plus one per two further years, capped at 25.
func EntitledDays(hireDate, ref time.Time) int {
	if hireDate.After(ref) {
		return 0
	}
	months := wholeMonths(hireDate, ref)
	years := months / 12

	if years < 1 {
		return min(months, 11)
	}
	extra := (years - 1) / 2
	return min(15+extra, 25)
}

// RecomputeBalance re-derives the cached balance for (employee, year)
// from accruals and usages. Carryover covers the prior year only:
// leave not used within one year of grant expires.
func (s *Service) RecomputeBalance(ctx context.Context, employeeID string, year int) error {
	yearAccruals, err := s.accruals.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return fmt.Errorf("list accruals: %w", err)
	}
	var entitled float64
	for _, a := range yearAccruals {
		entitled += a.Days
	}

	yearUsages, err := s.usages.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return fmt.Errorf("list usages: %w", err)
	}
	var used float64
	for _, u := range yearUsages {
		used += u.Days
	}

	priorAccruals, err := s.accruals.ListByEmployeeYear(ctx, employeeID, year-1)
	if err != nil {
		return fmt.Errorf("list prior accruals: %w", err)
	}
	var carryover float64
	for _, a := range priorAccruals {
		if a.Remaining > 0 {
			carryover += a.Remaining
		}
	}

	remaining := math.Max(entitled+carryover-used, 0)

	_, err = s.balances.Upsert(ctx, leave.Balance{
		EmployeeID: employeeID,
		Year:       year,
		Entitled:   round2(entitled),
		Used:       round2(used),
		Remaining:  round2(remaining),
		Carryover:  round2(carryover),
	})
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// Balance returns the cached balance for (employee, year).
func (s *Service) Balance(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	return s.balances.GetByEmployeeYear(ctx, employeeID, year)
}

func wholeMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
