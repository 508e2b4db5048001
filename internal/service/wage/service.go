package wage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
)

// Resolver resolves every pay-rate field through the employee -> site
// -> system -> default chain. Fields resolve independently: a layer
// that sets only the hourly wage inherits everything else from the
// broader scopes.
type Resolver struct {
	configs   wage.Repository
	employees employee.Repository
}

func NewResolver(configs wage.Repository, employees employee.Repository) *Resolver {
	return &Resolver{configs: configs, employees: employees}
}

// Resolve returns a total wage configuration for an employee. When
// siteID is nil the employee's assigned site is used. No field is ever
// left unset; the hard-coded defaults terminate the chain.
func (r *Resolver) Resolve(ctx context.Context, employeeID string, siteID *string) (wage.Resolved, error) {
	layers, err := r.layers(ctx, employeeID, siteID)
	if err != nil {
		return wage.Resolved{}, err
	}
	resolved, _ := resolveFields(layers)
	return resolved, nil
}

// ResolveDetail also reports which scope supplied each field, for the
// admin inspection surface.
func (r *Resolver) ResolveDetail(ctx context.Context, employeeID string) (wage.Resolved, []wage.FieldSource, error) {
	layers, err := r.layers(ctx, employeeID, nil)
	if err != nil {
		return wage.Resolved{}, nil, err
	}
	resolved, sources := resolveFields(layers)
	return resolved, sources, nil
}

// Save upserts one partial layer. Nil fields mean "defer to the
// next-broader scope".
func (r *Resolver) Save(ctx context.Context, cfg wage.Config) (wage.Config, error) {
	switch cfg.Scope {
	case wage.ScopeSystem:
		cfg.TargetID = nil
	case wage.ScopeSite, wage.ScopeEmployee:
		if cfg.TargetID == nil {
			return wage.Config{}, fmt.Errorf("%w: %s scope needs a target", wage.ErrInvalidScope, cfg.Scope)
		}
	default:
		return wage.Config{}, wage.ErrInvalidScope
	}
	return r.configs.Upsert(ctx, cfg)
}

// layers returns the applicable partial configs, highest precedence
// first. Missing layers are simply absent; that is the normal case.
func (r *Resolver) layers(ctx context.Context, employeeID string, siteID *string) ([]wage.Config, error) {
	var layers []wage.Config

	if employeeID != "" {
		empCfg, err := r.configs.GetByScopeTarget(ctx, wage.ScopeEmployee, &employeeID)
		if err == nil {
			layers = append(layers, empCfg)
		} else if !errors.Is(err, wage.ErrConfigNotFound) {
			return nil, err
		}

		if siteID == nil {
			emp, err := r.employees.GetByID(ctx, employeeID)
			if err == nil && emp.SiteID != nil {
				siteID = emp.SiteID
			}
		}
	}

	if siteID != nil {
		siteCfg, err := r.configs.GetByScopeTarget(ctx, wage.ScopeSite, siteID)
		if err == nil {
			layers = append(layers, siteCfg)
		} else if !errors.Is(err, wage.ErrConfigNotFound) {
			return nil, err
		}
	}

	sysCfg, err := r.configs.GetByScopeTarget(ctx, wage.ScopeSystem, nil)
	if err == nil {
		layers = append(layers, sysCfg)
	} else if !errors.Is(err, wage.ErrConfigNotFound) {
		return nil, err
	}

	return layers, nil
}

func resolveFields(layers []wage.Config) (wage.Resolved, []wage.FieldSource) {
	def := wage.Defaults()
	out := def
	var sources []wage.FieldSource

	track := func(field string, value interface{}, source string) {
		sources = append(sources, wage.FieldSource{Field: field, Value: value, Source: source})
	}

	out.WageType = pick(layers, func(c wage.Config) *wage.WageType { return c.WageType }, def.WageType,
		"wage_type", track)
	out.HourlyWage = pick(layers, func(c wage.Config) *int64 { return c.HourlyWage }, def.HourlyWage,
		"hourly_wage", track)
	out.DailyWage = pick(layers, func(c wage.Config) *int64 { return c.DailyWage }, def.DailyWage,
		"daily_wage", track)
	out.StandardWorkHours = pick(layers, func(c wage.Config) *float64 { return c.StandardWorkHours }, def.StandardWorkHours,
		"standard_work_hours", track)
	out.BreakHours = pick(layers, func(c wage.Config) *float64 { return c.BreakHours }, def.BreakHours,
		"break_hours", track)
	out.OvertimeRate = pick(layers, func(c wage.Config) *float64 { return c.OvertimeRate }, def.OvertimeRate,
		"overtime_rate", track)
	out.NightBonusRate = pick(layers, func(c wage.Config) *float64 { return c.NightBonusRate }, def.NightBonusRate,
		"night_bonus_rate", track)
	out.UnpaidHolidayRate = pick(layers, func(c wage.Config) *float64 { return c.UnpaidHolidayRate }, def.UnpaidHolidayRate,
		"unpaid_holiday_rate", track)
	out.PaidHolidayRate = pick(layers, func(c wage.Config) *float64 { return c.PaidHolidayRate }, def.PaidHolidayRate,
		"paid_holiday_rate", track)
	out.PaidHolidayOTRate = pick(layers, func(c wage.Config) *float64 { return c.PaidHolidayOTRate }, def.PaidHolidayOTRate,
		"paid_holiday_ot_rate", track)
	out.OvertimeUnit = pick(layers, func(c wage.Config) *wage.OvertimeUnit { return c.OvertimeUnit }, def.OvertimeUnit,
		"overtime_unit", track)
	out.OvertimeFixedAmount = pick(layers, func(c wage.Config) *int64 { return c.OvertimeFixedAmount }, def.OvertimeFixedAmount,
		"overtime_fixed_amount", track)
	out.CalcMethod = pick(layers, func(c wage.Config) *wage.CalcMethod { return c.CalcMethod }, def.CalcMethod,
		"calc_method", track)

	return out, sources
}

// pick walks the layers, highest precedence first, and returns the
// first value actually set; the default terminates the chain.
func pick[T any](layers []wage.Config, get func(wage.Config) *T, def T, field string, track func(string, interface{}, string)) T {
	for _, layer := range layers {
		if v := get(layer); v != nil {
			track(field, *v, string(layer.Scope))
			return *v
		}
	}
	track(field, def, "default")
	return def
}
