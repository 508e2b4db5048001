package wage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
	"github.com/ashaile/humetix-backend-go/internal/repository/memory"
)

func ptr[T any](v T) *T { return &v }

func newTestResolver(t *testing.T) (*Resolver, *memory.WageConfigRepository, employee.Employee) {
	t.Helper()
	configs := memory.NewWageConfigRepository()
	employees := memory.NewEmployeeRepository()

	siteID := "site-1"
	emp, err := employees.Create(context.Background(), employee.Employee{
		Name:           "Test Worker",
		BirthDate:      "900101",
		EmploymentType: employee.EmploymentTypeWeekly,
		IsActive:       true,
		SiteID:         &siteID,
	})
	require.NoError(t, err)

	return NewResolver(configs, employees), configs, emp
}

func TestResolver_Resolve_DefaultsOnly(t *testing.T) {
	r, _, emp := newTestResolver(t)

	resolved, err := r.Resolve(context.Background(), emp.ID, nil)
	require.NoError(t, err)

	def := wage.Defaults()
	assert.Equal(t, def.HourlyWage, resolved.HourlyWage)
	assert.Equal(t, def.WageType, resolved.WageType)
	assert.Equal(t, def.OvertimeRate, resolved.OvertimeRate)
	assert.Equal(t, wage.OvertimeUnitRate, resolved.OvertimeUnit)
}

func TestResolver_Resolve_LayeredPrecedence(t *testing.T) {
	r, configs, emp := newTestResolver(t)
	ctx := context.Background()

	// System sets the hourly wage, the site overrides the overtime
	// rate, the employee layer sets a day rate. Each field resolves
	// through its own chain.
	_, err := configs.Upsert(ctx, wage.Config{
		Scope:      wage.ScopeSystem,
		HourlyWage: ptr(int64(11_000)),
	})
	require.NoError(t, err)
	_, err = configs.Upsert(ctx, wage.Config{
		Scope:        wage.ScopeSite,
		TargetID:     emp.SiteID,
		OvertimeRate: ptr(2.0),
	})
	require.NoError(t, err)
	_, err = configs.Upsert(ctx, wage.Config{
		Scope:     wage.ScopeEmployee,
		TargetID:  &emp.ID,
		DailyWage: ptr(int64(100_000)),
	})
	require.NoError(t, err)

	resolved, err := r.Resolve(ctx, emp.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(11_000), resolved.HourlyWage)
	assert.Equal(t, 2.0, resolved.OvertimeRate)
	assert.Equal(t, int64(100_000), resolved.DailyWage)
	assert.Equal(t, 0.5, resolved.NightBonusRate) // default
}

func TestResolver_Resolve_EmployeeBeatsSite(t *testing.T) {
	r, configs, emp := newTestResolver(t)
	ctx := context.Background()

	_, err := configs.Upsert(ctx, wage.Config{
		Scope:      wage.ScopeSite,
		TargetID:   emp.SiteID,
		HourlyWage: ptr(int64(12_000)),
	})
	require.NoError(t, err)
	_, err = configs.Upsert(ctx, wage.Config{
		Scope:      wage.ScopeEmployee,
		TargetID:   &emp.ID,
		HourlyWage: ptr(int64(15_000)),
	})
	require.NoError(t, err)

	resolved, err := r.Resolve(ctx, emp.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(15_000), resolved.HourlyWage)
}

func TestResolver_ResolveDetail_ReportsSources(t *testing.T) {
	r, configs, emp := newTestResolver(t)
	ctx := context.Background()

	_, err := configs.Upsert(ctx, wage.Config{
		Scope:      wage.ScopeSystem,
		HourlyWage: ptr(int64(11_000)),
	})
	require.NoError(t, err)

	_, sources, err := r.ResolveDetail(ctx, emp.ID)
	require.NoError(t, err)

	bySrc := make(map[string]string, len(sources))
	for _, s := range sources {
		bySrc[s.Field] = s.Source
	}
	assert.Equal(t, "system", bySrc["hourly_wage"])
	assert.Equal(t, "default", bySrc["overtime_rate"])
	assert.Equal(t, "default", bySrc["wage_type"])
}

func TestResolver_Save_ScopeValidation(t *testing.T) {
	r, _, emp := newTestResolver(t)
	ctx := context.Background()

	// System scope must not carry a target.
	saved, err := r.Save(ctx, wage.Config{
		Scope:      wage.ScopeSystem,
		TargetID:   ptr("stray"),
		HourlyWage: ptr(int64(11_000)),
	})
	require.NoError(t, err)
	assert.Nil(t, saved.TargetID)

	// Site and employee scopes need one.
	_, err = r.Save(ctx, wage.Config{Scope: wage.ScopeSite})
	assert.ErrorIs(t, err, wage.ErrInvalidScope)

	_, err = r.Save(ctx, wage.Config{Scope: "team", TargetID: &emp.ID})
	assert.ErrorIs(t, err, wage.ErrInvalidScope)
}
