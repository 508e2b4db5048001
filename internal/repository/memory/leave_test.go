package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
)

func TestLeaveAccrualRepository_Create_DuplicateMonth(t *testing.T) {
	repo := NewLeaveAccrualRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, leave.Accrual{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
		Type: leave.AccrualTypeMonthly, Days: 1, Remaining: 1,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, leave.Accrual{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
		Type: leave.AccrualTypeManual, Days: 2, Remaining: 2,
	})
	assert.ErrorIs(t, err, leave.ErrDuplicateAccrual)

	// Same month for another employee is fine.
	_, err = repo.Create(ctx, leave.Accrual{
		EmployeeID: "emp-2", Year: 2026, Month: 3,
		Type: leave.AccrualTypeMonthly, Days: 1, Remaining: 1,
	})
	assert.NoError(t, err)
}

func TestLeaveAccrualRepository_ListOpenByEmployee_Order(t *testing.T) {
	repo := NewLeaveAccrualRepository()
	ctx := context.Background()

	// Insert out of order; listing must come back oldest grant first so
	// usage registration drains carryover before current-year days.
	seed := []struct {
		year, month int
		remaining   float64
	}{
		{2026, 5, 1},
		{2025, 0, 2},
		{2026, 0, 15},
		{2026, 2, 0}, // exhausted, must not appear
	}
	for _, s := range seed {
		_, err := repo.Create(ctx, leave.Accrual{
			EmployeeID: "emp-1", Year: s.year, Month: s.month,
			Type: leave.AccrualTypeManual, Days: 2, Remaining: s.remaining,
		})
		require.NoError(t, err)
	}

	open, err := repo.ListOpenByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, open, 3)
	assert.Equal(t, 2025, open[0].Year)
	assert.Equal(t, 0, open[1].Month)
	assert.Equal(t, 2026, open[1].Year)
	assert.Equal(t, 5, open[2].Month)
}

func TestLeaveBalanceRepository_Upsert_KeepsIdentity(t *testing.T) {
	repo := NewLeaveBalanceRepository()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, leave.Balance{EmployeeID: "emp-1", Year: 2026, Entitled: 15, Remaining: 15})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.Upsert(ctx, leave.Balance{EmployeeID: "emp-1", Year: 2026, Entitled: 15, Used: 3, Remaining: 12})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := repo.GetByEmployeeYear(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.Remaining)
}

func TestAttendanceRepository_Create_DuplicateDay(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, attendance.Record{
		EmployeeID: "emp-1", Date: day,
		WorkType: attendance.WorkTypeNormal, Source: attendance.SourceEmployee,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Record{
		EmployeeID: "emp-1", Date: day,
		WorkType: attendance.WorkTypeNight, Source: attendance.SourceImport,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)

	got, err := repo.GetByEmployeeAndDate(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Equal(t, attendance.WorkTypeNormal, got.WorkType)
}
