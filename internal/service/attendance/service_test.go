package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/repository/memory"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
)

func newTestService() (*Service, *memory.AttendanceRepository) {
	records := memory.NewAttendanceRepository()
	resolver := calendarService.NewResolver(memory.NewCalendarRepository(), nil)
	return NewService(records, resolver, testPolicy()), records
}

func TestService_Submit_DecomposesHours(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Submit(ctx, attendance.SubmitRequest{
		EmployeeID: "emp-1",
		Date:       "2026-06-01", // Monday
		ClockIn:    "09:00",
		ClockOut:   "18:00",
		WorkType:   "normal",
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.SourceEmployee, rec.Source)
	assert.Equal(t, 8.0, rec.TotalHours)
	assert.Equal(t, 0.0, rec.OvertimeHours)
	require.NotNil(t, rec.ClockIn)
	assert.Equal(t, "09:00", *rec.ClockIn)
}

func TestService_Submit_DuplicateDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := attendance.SubmitRequest{
		EmployeeID: "emp-1",
		Date:       "2026-06-01",
		ClockIn:    "09:00",
		ClockOut:   "18:00",
		WorkType:   "normal",
	}
	_, err := svc.Submit(ctx, req)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestService_Submit_TimeRequiredValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(context.Background(), attendance.SubmitRequest{
		EmployeeID: "emp-1",
		Date:       "2026-06-01",
		WorkType:   "normal", // needs clock times
	})
	assert.Error(t, err)
}

func TestService_AdminUpsert_OverwritesExisting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, attendance.SubmitRequest{
		EmployeeID: "emp-1",
		Date:       "2026-06-01",
		ClockIn:    "09:00",
		ClockOut:   "18:00",
		WorkType:   "normal",
	})
	require.NoError(t, err)

	rec, err := svc.AdminUpsert(ctx, attendance.SubmitRequest{
		EmployeeID: "emp-1",
		Date:       "2026-06-01",
		WorkType:   "absent",
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.SourceAdmin, rec.Source)
	assert.Equal(t, attendance.WorkTypeAbsent, rec.WorkType)
	assert.Equal(t, 0.0, rec.TotalHours)

	list, err := svc.ListMonth(ctx, "emp-1", "2026-06")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestService_Import_RespectsProvenance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Admin-entered day must survive the bulk import.
	_, err := svc.AdminUpsert(ctx, attendance.SubmitRequest{
		EmployeeID: "emp-1",
		Date:       "2026-06-01",
		WorkType:   "annual",
	})
	require.NoError(t, err)

	result, err := svc.Import(ctx, []attendance.ImportRow{
		{EmployeeID: "emp-1", Date: "2026-06-01", ClockIn: "09:00", ClockOut: "18:00", WorkType: "normal"},
		{EmployeeID: "emp-1", Date: "2026-06-02", ClockIn: "09:00", ClockOut: "18:00", WorkType: "normal"},
		{EmployeeID: "emp-1", Date: "not-a-date", WorkType: "normal"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Warnings, 2)

	kept, err := svc.ListMonth(ctx, "emp-1", "2026-06")
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, attendance.WorkTypeAnnual, kept[0].WorkType)
}

func TestService_Import_UpdatesEarlierImport(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Import(ctx, []attendance.ImportRow{
		{EmployeeID: "emp-1", Date: "2026-06-01", ClockIn: "09:00", ClockOut: "18:00", WorkType: "normal"},
	})
	require.NoError(t, err)

	result, err := svc.Import(ctx, []attendance.ImportRow{
		{EmployeeID: "emp-1", Date: "2026-06-01", ClockIn: "09:00", ClockOut: "20:00", WorkType: "normal"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)

	list, err := svc.ListMonth(ctx, "emp-1", "2026-06")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 10.0, list[0].TotalHours)
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2026-06")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", from.Format("2006-01-02"))
	assert.Equal(t, "2026-07-01", to.Format("2006-01-02"))

	_, _, err = MonthRange("june 2026")
	assert.Error(t, err)
}
