package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.Repository {
	return &payslipRepositoryImpl{db: db}
}

const payslipColumns = `
	id, employee_id, month, salary_mode,
	total_hours, overtime_hours, night_hours, holiday_hours,
	base_salary, weekly_holiday_pay, overtime_pay, night_pay, holiday_pay,
	absent_days, absent_deduction, weekly_holiday_deduction,
	gross, tax, pension, health_insurance, long_term_care, employment_ins,
	insurance_total, advance_deduction, net, is_manual, created_at, updated_at`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.SalaryMode,
		&p.TotalHours, &p.OvertimeHours, &p.NightHours, &p.HolidayHours,
		&p.BaseSalary, &p.WeeklyHolidayPay, &p.OvertimePay, &p.NightPay, &p.HolidayPay,
		&p.AbsentDays, &p.AbsentDeduction, &p.WeeklyHolidayDeduction,
		&p.Gross, &p.Tax, &p.Pension, &p.HealthInsurance, &p.LongTermCare,
		&p.EmploymentIns, &p.InsuranceTotal, &p.AdvanceDeduction, &p.Net,
		&p.IsManual, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payslipRepositoryImpl) Create(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payslips (id, employee_id, month, salary_mode,
			total_hours, overtime_hours, night_hours, holiday_hours,
			base_salary, weekly_holiday_pay, overtime_pay, night_pay, holiday_pay,
			absent_days, absent_deduction, weekly_holiday_deduction,
			gross, tax, pension, health_insurance, long_term_care, employment_ins,
			insurance_total, advance_deduction, net, is_manual)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.SalaryMode,
		p.TotalHours, p.OvertimeHours, p.NightHours, p.HolidayHours,
		p.BaseSalary, p.WeeklyHolidayPay, p.OvertimePay, p.NightPay, p.HolidayPay,
		p.AbsentDays, p.AbsentDeduction, p.WeeklyHolidayDeduction,
		p.Gross, p.Tax, p.Pension, p.HealthInsurance, p.LongTermCare,
		p.EmploymentIns, p.InsuranceTotal, p.AdvanceDeduction, p.Net, p.IsManual,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payslip.Payslip{}, err
	}
	return p, nil
}

func (r *payslipRepositoryImpl) GetByEmployeeMonth(ctx context.Context, employeeID, month string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1 AND month = $2
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, err
	}
	return p, nil
}

func (r *payslipRepositoryImpl) Update(ctx context.Context, p payslip.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET salary_mode = $2,
			total_hours = $3, overtime_hours = $4, night_hours = $5, holiday_hours = $6,
			base_salary = $7, weekly_holiday_pay = $8, overtime_pay = $9,
			night_pay = $10, holiday_pay = $11,
			absent_days = $12, absent_deduction = $13, weekly_holiday_deduction = $14,
			gross = $15, tax = $16, pension = $17, health_insurance = $18,
			long_term_care = $19, employment_ins = $20, insurance_total = $21,
			advance_deduction = $22, net = $23, is_manual = $24, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.SalaryMode,
		p.TotalHours, p.OvertimeHours, p.NightHours, p.HolidayHours,
		p.BaseSalary, p.WeeklyHolidayPay, p.OvertimePay, p.NightPay, p.HolidayPay,
		p.AbsentDays, p.AbsentDeduction, p.WeeklyHolidayDeduction,
		p.Gross, p.Tax, p.Pension, p.HealthInsurance, p.LongTermCare,
		p.EmploymentIns, p.InsuranceTotal, p.AdvanceDeduction, p.Net, p.IsManual,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}
	return nil
}

func (r *payslipRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payslipColumns + `
		FROM payslips
		WHERE month = $1
		ORDER BY employee_id
	`
	return r.list(ctx, q, query, month)
}

func (r *payslipRepositoryImpl) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1
		ORDER BY month DESC
		LIMIT $2
	`
	return r.list(ctx, q, query, employeeID, limit)
}

func (r *payslipRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payslip.Payslip, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payslips := make([]payslip.Payslip, 0)
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, p)
	}
	return payslips, rows.Err()
}

func (r *payslipRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}
	return nil
}
