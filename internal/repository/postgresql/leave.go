package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type leaveAccrualRepositoryImpl struct {
	db *database.DB
}

func NewLeaveAccrualRepository(db *database.DB) leave.AccrualRepository {
	return &leaveAccrualRepositoryImpl{db: db}
}

func (r *leaveAccrualRepositoryImpl) Create(ctx context.Context, a leave.Accrual) (leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_accruals (id, employee_id, year, month, type, days,
			remaining, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Year, a.Month, a.Type, a.Days, a.Remaining, a.Description,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return leave.Accrual{}, leave.ErrDuplicateAccrual
		}
		return leave.Accrual{}, err
	}
	return a, nil
}

func (r *leaveAccrualRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, type, days, remaining, description,
			   created_at, updated_at
		FROM leave_accruals
		WHERE id = $1
	`

	var a leave.Accrual
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Year, &a.Month, &a.Type, &a.Days,
		&a.Remaining, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Accrual{}, leave.ErrAccrualNotFound
		}
		return leave.Accrual{}, err
	}
	return a, nil
}

func (r *leaveAccrualRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, type, days, remaining, description,
			   created_at, updated_at
		FROM leave_accruals
		WHERE employee_id = $1 AND year = $2
		ORDER BY month
	`
	return r.list(ctx, q, query, employeeID, year)
}

func (r *leaveAccrualRepositoryImpl) ListOpenByEmployee(ctx context.Context, employeeID string) ([]leave.Accrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, type, days, remaining, description,
			   created_at, updated_at
		FROM leave_accruals
		WHERE employee_id = $1 AND remaining > 0
		ORDER BY year, month
	`
	return r.list(ctx, q, query, employeeID)
}

func (r *leaveAccrualRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.Accrual, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accruals := make([]leave.Accrual, 0)
	for rows.Next() {
		var a leave.Accrual
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Year, &a.Month, &a.Type, &a.Days,
			&a.Remaining, &a.Description, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accruals = append(accruals, a)
	}
	return accruals, rows.Err()
}

func (r *leaveAccrualRepositoryImpl) Update(ctx context.Context, a leave.Accrual) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_accruals
		SET days = $2, remaining = $3, description = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.Days, a.Remaining, a.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAccrualNotFound
	}
	return nil
}

func (r *leaveAccrualRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_accruals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAccrualNotFound
	}
	return nil
}

type leaveUsageRepositoryImpl struct {
	db *database.DB
}

func NewLeaveUsageRepository(db *database.DB) leave.UsageRepository {
	return &leaveUsageRepositoryImpl{db: db}
}

func (r *leaveUsageRepositoryImpl) Create(ctx context.Context, u leave.Usage) (leave.Usage, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_usages (id, employee_id, accrual_id, use_date, days, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.EmployeeID, u.AccrualID, u.UseDate, u.Days, u.Description,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return leave.Usage{}, err
	}
	return u, nil
}

func (r *leaveUsageRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, accrual_id, use_date, days, description,
			   created_at, updated_at
		FROM leave_usages
		WHERE id = $1
	`

	var u leave.Usage
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.EmployeeID, &u.AccrualID, &u.UseDate, &u.Days,
		&u.Description, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Usage{}, leave.ErrUsageNotFound
		}
		return leave.Usage{}, err
	}
	return u, nil
}

func (r *leaveUsageRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, accrual_id, use_date, days, description,
			   created_at, updated_at
		FROM leave_usages
		WHERE employee_id = $1 AND EXTRACT(YEAR FROM use_date) = $2
		ORDER BY use_date
	`
	return r.list(ctx, q, query, employeeID, year)
}

func (r *leaveUsageRepositoryImpl) ListByAccrual(ctx context.Context, accrualID string) ([]leave.Usage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, accrual_id, use_date, days, description,
			   created_at, updated_at
		FROM leave_usages
		WHERE accrual_id = $1
		ORDER BY use_date
	`
	return r.list(ctx, q, query, accrualID)
}

func (r *leaveUsageRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.Usage, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usages := make([]leave.Usage, 0)
	for rows.Next() {
		var u leave.Usage
		if err := rows.Scan(
			&u.ID, &u.EmployeeID, &u.AccrualID, &u.UseDate, &u.Days,
			&u.Description, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}

func (r *leaveUsageRepositoryImpl) Update(ctx context.Context, u leave.Usage) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_usages
		SET accrual_id = $2, use_date = $3, days = $4, description = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, u.ID, u.AccrualID, u.UseDate, u.Days, u.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrUsageNotFound
	}
	return nil
}

func (r *leaveUsageRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_usages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrUsageNotFound
	}
	return nil
}

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, b leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_balances (id, employee_id, year, entitled, used, remaining, carryover)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, year) DO UPDATE
		SET entitled = EXCLUDED.entitled, used = EXCLUDED.used,
			remaining = EXCLUDED.remaining, carryover = EXCLUDED.carryover,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Year, b.Entitled, b.Used, b.Remaining, b.Carryover,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return leave.Balance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, entitled, used, remaining, carryover,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.Entitled, &b.Used, &b.Remaining,
		&b.Carryover, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, err
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, entitled, used, remaining, carryover,
			   created_at, updated_at
		FROM leave_balances
		WHERE year = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.Balance, 0)
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.Year, &b.Entitled, &b.Used, &b.Remaining,
			&b.Carryover, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
