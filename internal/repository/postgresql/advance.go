package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/advance"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.Repository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `
	id, employee_id, month, employment_type, amount, reason, status,
	admin_comment, reviewed_at, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.Request, error) {
	var req advance.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Month, &req.EmploymentType, &req.Amount,
		&req.Reason, &req.Status, &req.AdminComment, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, req advance.Request) (advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO advance_requests (id, employee_id, month, employment_type,
			amount, reason, status, admin_comment, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Month, req.EmploymentType,
		req.Amount, req.Reason, req.Status, req.AdminComment, req.ReviewedAt,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return advance.Request{}, advance.ErrDuplicateRequest
		}
		return advance.Request{}, err
	}
	return req, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + advanceColumns + `
		FROM advance_requests
		WHERE id = $1
	`

	req, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Request{}, advance.ErrRequestNotFound
		}
		return advance.Request{}, err
	}
	return req, nil
}

func (r *advanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + advanceColumns + `
		FROM advance_requests
		WHERE employee_id = $1 AND month = $2
		ORDER BY created_at
	`
	return r.list(ctx, q, query, employeeID, month)
}

func (r *advanceRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]advance.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + advanceColumns + `
		FROM advance_requests
		WHERE month = $1
		ORDER BY created_at
	`
	return r.list(ctx, q, query, month)
}

func (r *advanceRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]advance.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]advance.Request, 0)
	for rows.Next() {
		req, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *advanceRepositoryImpl) Update(ctx context.Context, req advance.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_requests
		SET amount = $2, reason = $3, status = $4, admin_comment = $5,
			reviewed_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Amount, req.Reason, req.Status, req.AdminComment, req.ReviewedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrRequestNotFound
	}
	return nil
}

func (r *advanceRepositoryImpl) SumApproved(ctx context.Context, employeeID, month string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advance_requests
		WHERE employee_id = $1 AND month = $2 AND status = 'approved'
	`

	var total int64
	if err := q.QueryRow(ctx, query, employeeID, month).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
