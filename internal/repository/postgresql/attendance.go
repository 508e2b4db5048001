package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (id, employee_id, work_date, clock_in, clock_out,
			work_type, source, total_hours, overtime_hours, night_hours, holiday_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.ClockIn, rec.ClockOut,
		rec.WorkType, rec.Source, rec.TotalHours, rec.OvertimeHours,
		rec.NightHours, rec.HolidayHours,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, clock_in, clock_out, work_type, source,
			   total_hours, overtime_hours, night_hours, holiday_hours,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND work_date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.WorkType, &rec.Source,
		&rec.TotalHours, &rec.OvertimeHours, &rec.NightHours, &rec.HolidayHours,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $2, clock_out = $3, work_type = $4, source = $5,
			total_hours = $6, overtime_hours = $7, night_hours = $8,
			holiday_hours = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.ClockIn, rec.ClockOut, rec.WorkType, rec.Source,
		rec.TotalHours, rec.OvertimeHours, rec.NightHours, rec.HolidayHours,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, clock_in, clock_out, work_type, source,
			   total_hours, overtime_hours, night_hours, holiday_hours,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.WorkType, &rec.Source,
			&rec.TotalHours, &rec.OvertimeHours, &rec.NightHours, &rec.HolidayHours,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) SummarizeBetween(ctx context.Context, from, to time.Time) ([]attendance.HourSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id,
			   COALESCE(SUM(total_hours), 0),
			   COALESCE(SUM(overtime_hours), 0),
			   COALESCE(SUM(night_hours), 0),
			   COALESCE(SUM(holiday_hours), 0)
		FROM attendance_records
		WHERE work_date >= $1 AND work_date < $2
		GROUP BY employee_id
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]attendance.HourSummary, 0)
	for rows.Next() {
		var sum attendance.HourSummary
		if err := rows.Scan(
			&sum.EmployeeID, &sum.TotalHours, &sum.OvertimeHours,
			&sum.NightHours, &sum.HolidayHours,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}
