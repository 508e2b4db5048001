package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
)

// GenerateAccruals creates the tenure-driven grants for (employee,
// year): a single month-0 bulk grant for tenure of a year or more, or
// one-day monthly grants for first-year employees. Existing months are
// never touched, so re-running only fills gaps.
func (s *Service) GenerateAccruals(ctx context.Context, employeeID string, year int) (int, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	if emp.HireDate == nil {
		return 0, nil
	}

	created := 0
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.generateAccruals(ctx, emp, year)
		if txErr != nil {
			return txErr
		}
		if created > 0 {
			return s.RecomputeBalance(ctx, employeeID, year)
		}
		return nil
	})
	return created, err
}

func (s *Service) generateAccruals(ctx context.Context, emp employee.Employee, year int) (int, error) {
	refDate := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	hire := *emp.HireDate
	years := wholeMonths(hire, refDate) / 12

	existing, err := s.accruals.ListByEmployeeYear(ctx, emp.ID, year)
	if err != nil {
		return 0, fmt.Errorf("list accruals: %w", err)
	}
	existingMonths := make(map[int]bool, len(existing))
	for _, a := range existing {
		existingMonths[a.Month] = true
	}

	created := 0

	if years >= 1 {
		if !existingMonths[0] {
			entitled := EntitledDays(hire, refDate)

			// Conversion year: the first-year monthly grants convert
			// into, and are netted against, the first bulk grant.
			if years == 1 {
				prior, err := s.accruals.ListByEmployeeYear(ctx, emp.ID, year-1)
				if err != nil {
					return 0, fmt.Errorf("list prior accruals: %w", err)
				}
				monthly := 0
				for _, a := range prior {
					if a.Month > 0 {
						monthly++
					}
				}
				entitled = max(entitled-monthly, 0)
			}

			_, err := s.accruals.Create(ctx, leave.Accrual{
				EmployeeID:  emp.ID,
				Year:        year,
				Month:       0,
				Type:        leave.AccrualTypeAnnualBulk,
				Days:        float64(entitled),
				Remaining:   float64(entitled),
				Description: fmt.Sprintf("yearly grant of %d days", entitled),
			})
			if err != nil {
				return 0, fmt.Errorf("create bulk accrual: %w", err)
			}
			created++
		}
		return created, nil
	}

	// Under one year: one-day grants for each full month after the hire
	// month, capped at 11 over the employee's first-year lifetime.
	hireYM := hire.Year()*12 + int(hire.Month())
	for m := 1; m <= 12; m++ {
		if existingMonths[m] {
			continue
		}
		targetYM := year*12 + m
		if targetYM <= hireYM {
			continue
		}
		if targetYM-hireYM > 11 {
			continue
		}
		_, err := s.accruals.Create(ctx, leave.Accrual{
			EmployeeID:  emp.ID,
			Year:        year,
			Month:       m,
			Type:        leave.AccrualTypeMonthly,
			Days:        1,
			Remaining:   1,
			Description: fmt.Sprintf("monthly grant for %d-%02d", year, m),
		})
		if err != nil {
			return 0, fmt.Errorf("create monthly accrual: %w", err)
		}
		created++
	}
	return created, nil
}

// AutoGenerateFromAttendance grants a one-day monthly accrual for every
// fully-attended month that has attendance history and no accrual yet.
// Months that already carry an accrual, manual or automatic, are left
// alone, so admin entries survive the sweep. The in-progress month is
// skipped.
func (s *Service) AutoGenerateFromAttendance(ctx context.Context, employeeID string, year int) (int, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	records, err := s.attendance.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("list attendance: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	attended := make(map[int]int) // month -> attended-day count
	monthsWithData := make(map[int]bool)
	for _, r := range records {
		m := int(r.Date.Month())
		monthsWithData[m] = true
		if r.WorkType.CountsAsAttended() {
			attended[m]++
		}
	}

	created := 0
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.accruals.ListByEmployeeYear(ctx, employeeID, year)
		if err != nil {
			return fmt.Errorf("list accruals: %w", err)
		}
		existingMonths := make(map[int]bool, len(existing))
		for _, a := range existing {
			existingMonths[a.Month] = true
		}

		today := s.now()
		months := make([]int, 0, len(monthsWithData))
		for m := range monthsWithData {
			months = append(months, m)
		}
		sort.Ints(months)

		for _, m := range months {
			if year == today.Year() && m >= int(today.Month()) {
				continue
			}
			if existingMonths[m] {
				continue
			}

			required, err := s.resolver.WorkingDays(ctx, year, time.Month(m))
			if err != nil {
				return err
			}
			if required == 0 || attended[m] < required {
				continue
			}

			_, err = s.accruals.Create(ctx, leave.Accrual{
				EmployeeID:  employeeID,
				Year:        year,
				Month:       m,
				Type:        leave.AccrualTypeAutoMonthly,
				Days:        1,
				Remaining:   1,
				Description: fmt.Sprintf("full attendance %d/%d days", attended[m], required),
			})
			if err != nil {
				return fmt.Errorf("create auto accrual: %w", err)
			}
			created++
		}

		if created > 0 {
			return s.RecomputeBalance(ctx, employeeID, year)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if created > 0 {
		slog.Info("auto-generated leave accruals", "employee_id", employeeID, "year", year, "created", created)
	}
	return created, nil
}

// DeleteAccrual removes a grant. Usages already drawn from it are
// detached (their accrual reference nulled), not deleted.
func (s *Service) DeleteAccrual(ctx context.Context, accrualID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.accruals.GetByID(ctx, accrualID)
		if err != nil {
			return err
		}

		linked, err := s.usages.ListByAccrual(ctx, accrualID)
		if err != nil {
			return fmt.Errorf("list linked usages: %w", err)
		}
		for _, u := range linked {
			u.AccrualID = nil
			if err := s.usages.Update(ctx, u); err != nil {
				return fmt.Errorf("detach usage: %w", err)
			}
		}

		if err := s.accruals.Delete(ctx, accrualID); err != nil {
			return err
		}
		return s.RecomputeBalance(ctx, a.EmployeeID, a.Year)
	})
}
