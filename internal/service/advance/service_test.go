package advance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/config"
	"github.com/ashaile/humetix-backend-go/internal/domain/advance"
	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T, employmentType employee.EmploymentType) (*Service, employee.Employee) {
	t.Helper()
	employees := memory.NewEmployeeRepository()
	emp, err := employees.Create(context.Background(), employee.Employee{
		Name:           "Test Worker",
		BirthDate:      "900101",
		EmploymentType: employmentType,
		IsActive:       true,
	})
	require.NoError(t, err)
	return NewService(memory.NewAdvanceRepository(), employees, config.DefaultPolicy()), emp
}

func TestService_Submit(t *testing.T) {
	svc, emp := newTestService(t, employee.EmploymentTypeWeekly)

	req, err := svc.Submit(context.Background(), emp.ID, "2026-06", 200_000, "rent")
	require.NoError(t, err)

	assert.Equal(t, advance.StatusPending, req.Status)
	assert.Equal(t, int64(200_000), req.Amount)
	assert.Equal(t, employee.EmploymentTypeWeekly, req.EmploymentType)
}

func TestService_Submit_LimitByEmploymentType(t *testing.T) {
	ctx := context.Background()

	weekly, emp := newTestService(t, employee.EmploymentTypeWeekly)
	_, err := weekly.Submit(ctx, emp.ID, "2026-06", 300_001, "")
	assert.ErrorIs(t, err, advance.ErrLimitExceeded)

	shift, emp := newTestService(t, employee.EmploymentTypeShift)
	_, err = shift.Submit(ctx, emp.ID, "2026-06", 500_000, "")
	assert.NoError(t, err)
	_, err = shift.Submit(ctx, emp.ID, "2026-07", 500_001, "")
	assert.ErrorIs(t, err, advance.ErrLimitExceeded)
}

func TestService_Submit_RejectsNonPositiveAmount(t *testing.T) {
	svc, emp := newTestService(t, employee.EmploymentTypeWeekly)

	_, err := svc.Submit(context.Background(), emp.ID, "2026-06", 0, "")
	assert.ErrorIs(t, err, advance.ErrLimitExceeded)
}

func TestService_Submit_OneOpenRequestPerMonth(t *testing.T) {
	svc, emp := newTestService(t, employee.EmploymentTypeWeekly)
	ctx := context.Background()

	first, err := svc.Submit(ctx, emp.ID, "2026-06", 100_000, "")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, emp.ID, "2026-06", 100_000, "")
	assert.ErrorIs(t, err, advance.ErrDuplicateRequest)

	// A rejected request frees the month.
	_, err = svc.Reject(ctx, first.ID, "over budget")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, emp.ID, "2026-06", 100_000, "")
	assert.NoError(t, err)

	// Another month is always open.
	_, err = svc.Submit(ctx, emp.ID, "2026-07", 100_000, "")
	assert.NoError(t, err)
}

func TestService_Approve(t *testing.T) {
	svc, emp := newTestService(t, employee.EmploymentTypeWeekly)
	ctx := context.Background()

	req, err := svc.Submit(ctx, emp.ID, "2026-06", 100_000, "")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, req.ID, "ok")
	require.NoError(t, err)

	assert.Equal(t, advance.StatusApproved, approved.Status)
	assert.Equal(t, "ok", approved.AdminComment)
	assert.NotNil(t, approved.ReviewedAt)
}

func TestService_Review_OnlyFromPending(t *testing.T) {
	svc, emp := newTestService(t, employee.EmploymentTypeWeekly)
	ctx := context.Background()

	req, err := svc.Submit(ctx, emp.ID, "2026-06", 100_000, "")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, req.ID, "")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, req.ID, "")
	assert.ErrorIs(t, err, advance.ErrAlreadyReviewed)
	_, err = svc.Reject(ctx, req.ID, "")
	assert.ErrorIs(t, err, advance.ErrAlreadyReviewed)
}

func TestService_Submit_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(t, employee.EmploymentTypeWeekly)

	_, err := svc.Submit(context.Background(), "missing", "2026-06", 100_000, "")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
