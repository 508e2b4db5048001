package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
	"github.com/ashaile/humetix-backend-go/internal/pkg/validator"
)

// Service manages the employee registry. Employees are never deleted;
// resignation deactivates the record so ledger history stays intact.
type Service struct {
	employees employee.Repository
	now       func() time.Time
}

func NewService(employees employee.Repository) *Service {
	return &Service{employees: employees, now: time.Now}
}

// RegisterRequest carries a new employee. The (name, birth date) pair
// identifies the person among active employees.
type RegisterRequest struct {
	Name           string  `json:"name"`
	BirthDate      string  `json:"birth_date"`
	EmploymentType string  `json:"employment_type"`
	HireDate       string  `json:"hire_date,omitempty"`
	SiteID         *string `json:"site_id,omitempty"`
	Insurance      string  `json:"insurance,omitempty"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidBirthDate(r.BirthDate) {
		errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "birth date must be 6 digits (YYMMDD)"})
	}
	switch employee.EmploymentType(r.EmploymentType) {
	case employee.EmploymentTypeWeekly, employee.EmploymentTypeShift:
	default:
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "employment type must be weekly or shift"})
	}
	if r.HireDate != "" && !validator.IsValidDate(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date must be YYYY-MM-DD"})
	}
	if r.Insurance != "" {
		switch employee.InsuranceType(r.Insurance) {
		case employee.InsuranceFull, employee.InsuranceFlat:
		default:
			errs = append(errs, validator.ValidationError{Field: "insurance", Message: "insurance must be full or flat"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Register creates an active employee. An active employee with the same
// (name, birth date) already on file is a conflict.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	_, err := s.employees.GetActiveByCredentials(ctx, req.Name, req.BirthDate)
	switch {
	case err == nil:
		return employee.Employee{}, employee.ErrEmployeeExists
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		Name:           req.Name,
		BirthDate:      req.BirthDate,
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		IsActive:       true,
		SiteID:         req.SiteID,
	}
	if req.HireDate != "" {
		hire, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid hire date: %w", err)
		}
		emp.HireDate = &hire
	}
	if req.Insurance != "" {
		ins := employee.InsuranceType(req.Insurance)
		emp.Insurance = &ins
	}

	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	slog.Info("employee registered",
		slog.String("employee_id", created.ID),
		slog.String("employment_type", string(created.EmploymentType)))
	return created, nil
}

// Resign deactivates an employee as of resignDate, defaulting to today.
func (s *Service) Resign(ctx context.Context, id string, resignDate *time.Time) (employee.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive || emp.ResignDate != nil {
		return employee.Employee{}, employee.ErrAlreadyResigned
	}

	when := s.now()
	if resignDate != nil {
		when = *resignDate
	}
	emp.IsActive = false
	emp.ResignDate = &when
	if err := s.employees.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return emp, nil
}

// Identify resolves the (name, birth date) pair to an active employee.
func (s *Service) Identify(ctx context.Context, name, birthDate string) (employee.Employee, error) {
	return s.employees.GetActiveByCredentials(ctx, name, birthDate)
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.employees.ListActive(ctx)
}
