package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
)

type Service struct {
	records  attendance.Repository
	resolver *calendarService.Resolver
	policy   Policy
}

func NewService(records attendance.Repository, resolver *calendarService.Resolver, policy Policy) *Service {
	return &Service{records: records, resolver: resolver, policy: policy}
}

// Submit records an employee-entered attendance day. A record already
// present for the date is a duplicate submission, not a retry target.
func (s *Service) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.Record, error) {
	return s.upsert(ctx, req, attendance.SourceEmployee, false)
}

// AdminUpsert creates or corrects a day on behalf of an admin. Admin
// entries take the highest provenance and overwrite anything.
func (s *Service) AdminUpsert(ctx context.Context, req attendance.SubmitRequest) (attendance.Record, error) {
	return s.upsert(ctx, req, attendance.SourceAdmin, true)
}

func (s *Service) upsert(ctx context.Context, req attendance.SubmitRequest, source attendance.Source, overwrite bool) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Record{}, err
	}

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		WorkType:   attendance.WorkType(req.WorkType),
		Source:     source,
	}
	s.applyHours(ctx, &rec, req.ClockIn, req.ClockOut)

	existing, err := s.records.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	switch {
	case err == nil:
		if !overwrite {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		if err := s.records.Update(ctx, rec); err != nil {
			return attendance.Record{}, fmt.Errorf("update attendance: %w", err)
		}
		return rec, nil
	case errors.Is(err, attendance.ErrRecordNotFound):
		created, err := s.records.Create(ctx, rec)
		if err != nil {
			return attendance.Record{}, fmt.Errorf("create attendance: %w", err)
		}
		return created, nil
	default:
		return attendance.Record{}, err
	}
}

// Import merges bulk rows under provenance precedence: rows never
// overwrite admin- or employee-entered records.
func (s *Service) Import(ctx context.Context, rows []attendance.ImportRow) (attendance.ImportResult, error) {
	var result attendance.ImportResult

	for _, row := range rows {
		req := attendance.SubmitRequest(row)
		if err := req.Validate(); err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s %s: %v", row.EmployeeID, row.Date, err))
			continue
		}
		date, _ := time.Parse("2006-01-02", row.Date)

		rec := attendance.Record{
			EmployeeID: row.EmployeeID,
			Date:       date,
			WorkType:   attendance.WorkType(row.WorkType),
			Source:     attendance.SourceImport,
		}
		s.applyHours(ctx, &rec, row.ClockIn, row.ClockOut)

		existing, err := s.records.GetByEmployeeAndDate(ctx, row.EmployeeID, date)
		switch {
		case err == nil:
			if existing.Source.Precedence() > attendance.SourceImport.Precedence() {
				result.Skipped++
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s %s: kept %s-entered record", row.EmployeeID, row.Date, existing.Source))
				continue
			}
			rec.ID = existing.ID
			rec.CreatedAt = existing.CreatedAt
			if err := s.records.Update(ctx, rec); err != nil {
				return result, fmt.Errorf("update imported attendance: %w", err)
			}
			result.Updated++
		case errors.Is(err, attendance.ErrRecordNotFound):
			if _, err := s.records.Create(ctx, rec); err != nil {
				return result, fmt.Errorf("create imported attendance: %w", err)
			}
			result.Created++
		default:
			return result, err
		}
	}

	slog.Info("attendance import finished",
		"created", result.Created, "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}

// ListMonth returns an employee's records for a YYYY-MM month.
func (s *Service) ListMonth(ctx context.Context, employeeID, month string) ([]attendance.Record, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	return s.records.ListByEmployeeBetween(ctx, employeeID, from, to)
}

func (s *Service) applyHours(ctx context.Context, rec *attendance.Record, clockIn, clockOut string) {
	if clockIn == "" || clockOut == "" {
		return
	}
	in, out := clockIn, clockOut
	rec.ClockIn = &in
	rec.ClockOut = &out

	dayType := s.resolver.Resolve(ctx, rec.Date)
	h := Decompose(clockIn, clockOut, dayType, s.policy)
	rec.TotalHours = h.Total
	rec.OvertimeHours = h.Overtime
	rec.NightHours = h.Night
	rec.HolidayHours = h.Holiday
}

// MonthRange converts YYYY-MM into [first of month, first of next).
func MonthRange(month string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return from, from.AddDate(0, 1, 0), nil
}
