package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, name, birth_date, employment_type, hire_date,
			resign_date, is_active, site_id, insurance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.BirthDate, emp.EmploymentType, emp.HireDate,
		emp.ResignDate, emp.IsActive, emp.SiteID, emp.Insurance,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, birth_date, employment_type, hire_date,
			   resign_date, is_active, site_id, insurance, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.BirthDate, &emp.EmploymentType, &emp.HireDate,
		&emp.ResignDate, &emp.IsActive, &emp.SiteID, &emp.Insurance,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetActiveByCredentials(ctx context.Context, name, birthDate string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, birth_date, employment_type, hire_date,
			   resign_date, is_active, site_id, insurance, created_at, updated_at
		FROM employees
		WHERE name = $1 AND birth_date = $2 AND is_active = TRUE
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name, birthDate).Scan(
		&emp.ID, &emp.Name, &emp.BirthDate, &emp.EmploymentType, &emp.HireDate,
		&emp.ResignDate, &emp.IsActive, &emp.SiteID, &emp.Insurance,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, birth_date, employment_type, hire_date,
			   resign_date, is_active, site_id, insurance, created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.BirthDate, &emp.EmploymentType, &emp.HireDate,
			&emp.ResignDate, &emp.IsActive, &emp.SiteID, &emp.Insurance,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, birth_date = $3, employment_type = $4, hire_date = $5,
			resign_date = $6, is_active = $7, site_id = $8, insurance = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.BirthDate, emp.EmploymentType, emp.HireDate,
		emp.ResignDate, emp.IsActive, emp.SiteID, emp.Insurance,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
