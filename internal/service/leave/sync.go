package leave

import (
	"context"
	"log/slog"
	"math"

	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
)

// SyncAll reconciles every active employee's ledger for a year:
// attendance-driven grants, annual-day usage import, balance recompute.
// Employees are processed independently; a failure on one is logged and
// does not abort the rest.
func (s *Service) SyncAll(ctx context.Context, year int, includeAttendance bool) (leave.SyncResult, error) {
	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return leave.SyncResult{}, err
	}

	var result leave.SyncResult
	for _, emp := range employees {
		if includeAttendance {
			created, err := s.AutoGenerateFromAttendance(ctx, emp.ID, year)
			if err != nil {
				slog.Warn("leave sync: auto-generate failed", "employee_id", emp.ID, "error", err)
				continue
			}
			result.AutoCreated += created

			imported, err := s.ImportAttendanceUsages(ctx, emp.ID, year)
			if err != nil {
				slog.Warn("leave sync: usage import failed", "employee_id", emp.ID, "error", err)
				continue
			}
			result.UsagesAdded += imported
		}

		if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			return s.RecomputeBalance(ctx, emp.ID, year)
		}); err != nil {
			slog.Warn("leave sync: balance recompute failed", "employee_id", emp.ID, "error", err)
			continue
		}
		result.Synced++
	}

	slog.Info("leave sync finished",
		"year", year, "synced", result.Synced,
		"auto_created", result.AutoCreated, "usages_added", result.UsagesAdded)
	return result, nil
}

// EmployeeDetail assembles the per-employee-year ledger view: accruals,
// usages, prior-year carryover and the monthly grid.
func (s *Service) EmployeeDetail(ctx context.Context, employeeID string, year int) (leave.Detail, error) {
	accruals, err := s.accruals.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return leave.Detail{}, err
	}
	usages, err := s.usages.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return leave.Detail{}, err
	}
	prior, err := s.accruals.ListByEmployeeYear(ctx, employeeID, year-1)
	if err != nil {
		return leave.Detail{}, err
	}

	var carryoverAccruals []leave.Accrual
	var carryover float64
	for _, a := range prior {
		if a.Remaining > 0 {
			carryoverAccruals = append(carryoverAccruals, a)
			carryover += a.Remaining
		}
	}

	var entitled, used float64
	for _, a := range accruals {
		entitled += a.Days
	}
	for _, u := range usages {
		used += u.Days
	}
	pool := entitled + carryover
	remaining := math.Max(pool-used, 0)

	usedPct := 0
	if pool > 0 {
		usedPct = int(math.Round(used / pool * 100))
	}

	grid := make(map[int]leave.MonthCell, 12)
	for m := 1; m <= 12; m++ {
		grid[m] = leave.MonthCell{}
	}
	for _, a := range accruals {
		if a.Month >= 1 && a.Month <= 12 {
			grid[a.Month] = leave.MonthCell{Accrued: true, Days: a.Days, Remaining: a.Remaining}
		}
	}

	return leave.Detail{
		EmployeeID:        employeeID,
		Year:              year,
		Accruals:          accruals,
		Usages:            usages,
		CarryoverAccruals: carryoverAccruals,
		CarryoverTotal:    round2(carryover),
		Summary: leave.Summary{
			Entitled:  round2(entitled),
			Carryover: round2(carryover),
			Used:      round2(used),
			Remaining: round2(remaining),
			UsedPct:   usedPct,
		},
		MonthlyGrid: grid,
	}, nil
}
