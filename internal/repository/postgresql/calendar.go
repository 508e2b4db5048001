package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.Repository {
	return &calendarRepositoryImpl{db: db}
}

func (r *calendarRepositoryImpl) Upsert(ctx context.Context, o calendar.Override) (calendar.Override, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	query := `
		INSERT INTO calendar_overrides (id, work_date, day_type, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (work_date) DO UPDATE
		SET day_type = EXCLUDED.day_type, note = EXCLUDED.note, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, o.ID, o.Date, o.DayType, o.Note).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return calendar.Override{}, err
	}
	return o, nil
}

func (r *calendarRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (calendar.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_date, day_type, note, created_at, updated_at
		FROM calendar_overrides
		WHERE work_date = $1
	`

	var o calendar.Override
	err := q.QueryRow(ctx, query, date).Scan(
		&o.ID, &o.Date, &o.DayType, &o.Note, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.Override{}, calendar.ErrOverrideNotFound
		}
		return calendar.Override{}, err
	}
	return o, nil
}

func (r *calendarRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]calendar.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_date, day_type, note, created_at, updated_at
		FROM calendar_overrides
		WHERE work_date >= $1 AND work_date < $2
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make([]calendar.Override, 0)
	for rows.Next() {
		var o calendar.Override
		if err := rows.Scan(&o.ID, &o.Date, &o.DayType, &o.Note, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

func (r *calendarRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM calendar_overrides WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrOverrideNotFound
	}
	return nil
}
