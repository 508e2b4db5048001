package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
	leaveService "github.com/ashaile/humetix-backend-go/internal/service/leave"
	payslipService "github.com/ashaile/humetix-backend-go/internal/service/payslip"
)

// EngineJobs holds the services the scheduled jobs drive.
type EngineJobs struct {
	leaves   *leaveService.Service
	payslips *payslipService.Calculator
}

func NewEngineJobs(leaves *leaveService.Service, payslips *payslipService.Calculator) *EngineJobs {
	return &EngineJobs{
		leaves:   leaves,
		payslips: payslips,
	}
}

// RegisterJobs adds all scheduled jobs to the scheduler.
func (j *EngineJobs) RegisterJobs(scheduler *Scheduler) {
	// Hourly tick, the jobs themselves gate on the hour/day they run.
	scheduler.AddJob("leave-ledger-sync", 1*time.Hour, j.syncLeaveLedgers)
	scheduler.AddJob("monthly-payslip-batch", 1*time.Hour, j.generateMonthlyPayslips)
}

// syncLeaveLedgers rebuilds every active employee's leave ledger for
// the current year. Runs once per day at midnight UTC.
func (j *EngineJobs) syncLeaveLedgers(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	result, err := j.leaves.SyncAll(ctx, time.Now().UTC().Year(), true)
	if err != nil {
		return err
	}

	slog.Info("Leave ledger sync completed",
		"synced", result.Synced,
		"accruals_created", result.AutoCreated,
		"usages_imported", result.UsagesAdded)
	return nil
}

// generateMonthlyPayslips runs the batch for the month that just
// closed. Runs on the first day of each month at midnight UTC.
func (j *EngineJobs) generateMonthlyPayslips(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	month := now.AddDate(0, -1, 0).Format("2006-01")
	result, err := j.payslips.GenerateMonth(ctx, month, "")
	if err != nil {
		if errors.Is(err, payslip.ErrNoSourceData) {
			slog.Info("Monthly payslip batch skipped, no attendance data", "month", month)
			return nil
		}
		return err
	}

	slog.Info("Monthly payslip batch completed",
		"month", month,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return nil
}
