package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
	"github.com/ashaile/humetix-backend-go/internal/repository/memory"
)

func validRequest() RegisterRequest {
	return RegisterRequest{
		Name:           "Kim Worker",
		BirthDate:      "900101",
		EmploymentType: "weekly",
		HireDate:       "2026-01-05",
		Insurance:      "full",
	}
}

func TestService_Register(t *testing.T) {
	svc := NewService(memory.NewEmployeeRepository())

	emp, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, emp.ID)
	assert.True(t, emp.IsActive)
	assert.Equal(t, employee.EmploymentTypeWeekly, emp.EmploymentType)
	require.NotNil(t, emp.HireDate)
	assert.Equal(t, "2026-01-05", emp.HireDate.Format("2006-01-02"))
	assert.Equal(t, employee.InsuranceFull, emp.InsuranceElection())
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(memory.NewEmployeeRepository())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"empty name", func(r *RegisterRequest) { r.Name = " " }, "name"},
		{"bad birth date", func(r *RegisterRequest) { r.BirthDate = "1990-01-01" }, "birth_date"},
		{"bad employment type", func(r *RegisterRequest) { r.EmploymentType = "contract" }, "employment_type"},
		{"bad hire date", func(r *RegisterRequest) { r.HireDate = "05/01/2026" }, "hire_date"},
		{"bad insurance", func(r *RegisterRequest) { r.Insurance = "none" }, "insurance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Register(ctx, req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tc.field)
		})
	}
}

func TestService_Register_DuplicateCredentials(t *testing.T) {
	svc := NewService(memory.NewEmployeeRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)
}

func TestService_Resign(t *testing.T) {
	svc := NewService(memory.NewEmployeeRepository())
	ctx := context.Background()
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) }

	emp, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	resigned, err := svc.Resign(ctx, emp.ID, nil)
	require.NoError(t, err)

	assert.False(t, resigned.IsActive)
	require.NotNil(t, resigned.ResignDate)
	assert.Equal(t, "2026-08-31", resigned.ResignDate.Format("2006-01-02"))

	_, err = svc.Resign(ctx, emp.ID, nil)
	assert.ErrorIs(t, err, employee.ErrAlreadyResigned)

	// The record survives for the ledgers; only the active list drops it.
	_, err = svc.Get(ctx, emp.ID)
	assert.NoError(t, err)
	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestService_Resign_ReRegisterAfterResignation(t *testing.T) {
	svc := NewService(memory.NewEmployeeRepository())
	ctx := context.Background()

	emp, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Resign(ctx, emp.ID, nil)
	require.NoError(t, err)

	// The same person can be hired again; only active duplicates
	// conflict.
	again, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, emp.ID, again.ID)
}

func TestService_Identify(t *testing.T) {
	svc := NewService(memory.NewEmployeeRepository())
	ctx := context.Background()

	emp, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	found, err := svc.Identify(ctx, "Kim Worker", "900101")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, found.ID)

	_, err = svc.Identify(ctx, "Kim Worker", "900102")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
