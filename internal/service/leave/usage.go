package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
)

// RegisterUsage consumes days against the oldest unexhausted grants
// first. One call can span several accruals; any shortfall past all
// remaining grants becomes a single overdraft usage with no accrual
// reference.
func (s *Service) RegisterUsage(ctx context.Context, employeeID string, useDate time.Time, days float64, description string) ([]leave.Usage, error) {
	var created []leave.Usage

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		open, err := s.accruals.ListOpenByEmployee(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("list open accruals: %w", err)
		}

		remaining := days
		for _, a := range open {
			if remaining <= 0 {
				break
			}
			consume := min(a.Remaining, remaining)
			a.Remaining = round2(a.Remaining - consume)
			remaining = round2(remaining - consume)

			if err := s.accruals.Update(ctx, a); err != nil {
				return fmt.Errorf("decrement accrual: %w", err)
			}

			accrualID := a.ID
			u, err := s.usages.Create(ctx, leave.Usage{
				EmployeeID:  employeeID,
				AccrualID:   &accrualID,
				UseDate:     useDate,
				Days:        consume,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("create usage: %w", err)
			}
			created = append(created, u)
		}

		if remaining > 0 {
			u, err := s.usages.Create(ctx, leave.Usage{
				EmployeeID:  employeeID,
				UseDate:     useDate,
				Days:        remaining,
				Description: strings.TrimSpace(description + " (overdraft)"),
			})
			if err != nil {
				return fmt.Errorf("create overdraft usage: %w", err)
			}
			created = append(created, u)
		}

		return s.RecomputeBalance(ctx, employeeID, useDate.Year())
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteUsage reverses a consumption, restoring the referenced
// accrual's remaining balance exactly.
func (s *Service) DeleteUsage(ctx context.Context, usageID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.usages.GetByID(ctx, usageID)
		if err != nil {
			return err
		}

		if u.AccrualID != nil {
			a, err := s.accruals.GetByID(ctx, *u.AccrualID)
			if err == nil {
				a.Remaining = round2(a.Remaining + u.Days)
				if err := s.accruals.Update(ctx, a); err != nil {
					return fmt.Errorf("restore accrual: %w", err)
				}
			}
		}

		if err := s.usages.Delete(ctx, usageID); err != nil {
			return err
		}
		return s.RecomputeBalance(ctx, u.EmployeeID, u.UseDate.Year())
	})
}

// ImportAttendanceUsages converts annual-leave attendance days into
// usage records, one day each, skipping dates that already have one.
func (s *Service) ImportAttendanceUsages(ctx context.Context, employeeID string, year int) (int, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	records, err := s.attendance.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("list attendance: %w", err)
	}

	imported := 0
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.usages.ListByEmployeeYear(ctx, employeeID, year)
		if err != nil {
			return fmt.Errorf("list usages: %w", err)
		}
		usedDates := make(map[string]bool, len(existing))
		for _, u := range existing {
			usedDates[u.UseDate.Format("2006-01-02")] = true
		}

		open, err := s.accruals.ListOpenByEmployee(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("list open accruals: %w", err)
		}

		for _, rec := range records {
			if rec.WorkType != attendance.WorkTypeAnnual {
				continue
			}
			if usedDates[rec.Date.Format("2006-01-02")] {
				continue
			}

			remaining := 1.0
			for i := range open {
				if remaining <= 0 {
					break
				}
				if open[i].Remaining <= 0 {
					continue
				}
				consume := min(open[i].Remaining, remaining)
				open[i].Remaining = round2(open[i].Remaining - consume)
				remaining = round2(remaining - consume)

				if err := s.accruals.Update(ctx, open[i]); err != nil {
					return fmt.Errorf("decrement accrual: %w", err)
				}
				accrualID := open[i].ID
				if _, err := s.usages.Create(ctx, leave.Usage{
					EmployeeID:  employeeID,
					AccrualID:   &accrualID,
					UseDate:     rec.Date,
					Days:        consume,
					Description: "attendance import",
				}); err != nil {
					return fmt.Errorf("create usage: %w", err)
				}
			}
			if remaining > 0 {
				if _, err := s.usages.Create(ctx, leave.Usage{
					EmployeeID:  employeeID,
					UseDate:     rec.Date,
					Days:        remaining,
					Description: "attendance import (overdraft)",
				}); err != nil {
					return fmt.Errorf("create overdraft usage: %w", err)
				}
			}
			imported++
		}

		if imported > 0 {
			return s.RecomputeBalance(ctx, employeeID, year)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}
