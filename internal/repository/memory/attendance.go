package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu    sync.RWMutex
	items map[string]attendance.Record
	// byDay enforces the (employee, date) uniqueness the schema carries.
	byDay map[string]string
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		items: make(map[string]attendance.Record),
		byDay: make(map[string]string),
	}
}

func dayKey(employeeID string, date time.Time) string {
	return fmt.Sprintf("%s/%s", employeeID, date.Format("2006-01-02"))
}

func (r *AttendanceRepository) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(rec.EmployeeID, rec.Date)
	if _, ok := r.byDay[key]; ok {
		return attendance.Record{}, attendance.ErrDuplicateRecord
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.items[rec.ID] = rec
	r.byDay[key] = rec.ID
	return rec, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDay[dayKey(employeeID, date)]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return r.items[id], nil
}

func (r *AttendanceRepository) Update(_ context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[rec.ID]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	delete(r.byDay, dayKey(existing.EmployeeID, existing.Date))
	rec.UpdatedAt = time.Now()
	r.items[rec.ID] = rec
	r.byDay[dayKey(rec.EmployeeID, rec.Date)] = rec.ID
	return nil
}

func (r *AttendanceRepository) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.Record
	for _, rec := range r.items {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && rec.Date.Before(to) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AttendanceRepository) SummarizeBetween(_ context.Context, from, to time.Time) ([]attendance.HourSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byEmployee := make(map[string]*attendance.HourSummary)
	for _, rec := range r.items {
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		sum, ok := byEmployee[rec.EmployeeID]
		if !ok {
			sum = &attendance.HourSummary{EmployeeID: rec.EmployeeID}
			byEmployee[rec.EmployeeID] = sum
		}
		sum.TotalHours += rec.TotalHours
		sum.OvertimeHours += rec.OvertimeHours
		sum.NightHours += rec.NightHours
		sum.HolidayHours += rec.HolidayHours
	}

	out := make([]attendance.HourSummary, 0, len(byEmployee))
	for _, sum := range byEmployee {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}
