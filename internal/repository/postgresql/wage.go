package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/wage"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type wageConfigRepositoryImpl struct {
	db *database.DB
}

func NewWageConfigRepository(db *database.DB) wage.Repository {
	return &wageConfigRepositoryImpl{db: db}
}

const wageConfigColumns = `
	id, scope, target_id, wage_type, hourly_wage, daily_wage,
	standard_work_hours, break_hours, overtime_rate, night_bonus_rate,
	unpaid_holiday_rate, paid_holiday_rate, paid_holiday_ot_rate,
	overtime_unit, overtime_fixed_amount, calc_method, created_at, updated_at`

func scanWageConfig(row pgx.Row) (wage.Config, error) {
	var cfg wage.Config
	err := row.Scan(
		&cfg.ID, &cfg.Scope, &cfg.TargetID, &cfg.WageType, &cfg.HourlyWage,
		&cfg.DailyWage, &cfg.StandardWorkHours, &cfg.BreakHours,
		&cfg.OvertimeRate, &cfg.NightBonusRate, &cfg.UnpaidHolidayRate,
		&cfg.PaidHolidayRate, &cfg.PaidHolidayOTRate, &cfg.OvertimeUnit,
		&cfg.OvertimeFixedAmount, &cfg.CalcMethod, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

func (r *wageConfigRepositoryImpl) GetByScopeTarget(ctx context.Context, scope wage.Scope, targetID *string) (wage.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + wageConfigColumns + `
		FROM wage_configs
		WHERE scope = $1 AND target_id IS NOT DISTINCT FROM $2
	`

	cfg, err := scanWageConfig(q.QueryRow(ctx, query, scope, targetID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return wage.Config{}, wage.ErrConfigNotFound
		}
		return wage.Config{}, err
	}
	return cfg, nil
}

func (r *wageConfigRepositoryImpl) Upsert(ctx context.Context, cfg wage.Config) (wage.Config, error) {
	q := GetQuerier(ctx, r.db)

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	query := `
		INSERT INTO wage_configs (id, scope, target_id, wage_type, hourly_wage,
			daily_wage, standard_work_hours, break_hours, overtime_rate,
			night_bonus_rate, unpaid_holiday_rate, paid_holiday_rate,
			paid_holiday_ot_rate, overtime_unit, overtime_fixed_amount, calc_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (scope, target_id) DO UPDATE
		SET wage_type = EXCLUDED.wage_type,
			hourly_wage = EXCLUDED.hourly_wage,
			daily_wage = EXCLUDED.daily_wage,
			standard_work_hours = EXCLUDED.standard_work_hours,
			break_hours = EXCLUDED.break_hours,
			overtime_rate = EXCLUDED.overtime_rate,
			night_bonus_rate = EXCLUDED.night_bonus_rate,
			unpaid_holiday_rate = EXCLUDED.unpaid_holiday_rate,
			paid_holiday_rate = EXCLUDED.paid_holiday_rate,
			paid_holiday_ot_rate = EXCLUDED.paid_holiday_ot_rate,
			overtime_unit = EXCLUDED.overtime_unit,
			overtime_fixed_amount = EXCLUDED.overtime_fixed_amount,
			calc_method = EXCLUDED.calc_method,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.ID, cfg.Scope, cfg.TargetID, cfg.WageType, cfg.HourlyWage,
		cfg.DailyWage, cfg.StandardWorkHours, cfg.BreakHours, cfg.OvertimeRate,
		cfg.NightBonusRate, cfg.UnpaidHolidayRate, cfg.PaidHolidayRate,
		cfg.PaidHolidayOTRate, cfg.OvertimeUnit, cfg.OvertimeFixedAmount, cfg.CalcMethod,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return wage.Config{}, err
	}
	return cfg, nil
}

func (r *wageConfigRepositoryImpl) ListByScope(ctx context.Context, scope wage.Scope) ([]wage.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + wageConfigColumns + `
		FROM wage_configs
		WHERE scope = $1
		ORDER BY target_id NULLS FIRST
	`

	rows, err := q.Query(ctx, query, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]wage.Config, 0)
	for rows.Next() {
		cfg, err := scanWageConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (r *wageConfigRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM wage_configs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return wage.ErrConfigNotFound
	}
	return nil
}
