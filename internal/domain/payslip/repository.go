package payslip

import "context"

type Repository interface {
	Create(ctx context.Context, p Payslip) (Payslip, error)
	GetByEmployeeMonth(ctx context.Context, employeeID, month string) (Payslip, error)
	Update(ctx context.Context, p Payslip) error
	ListByMonth(ctx context.Context, month string) ([]Payslip, error)
	// ListRecentByEmployee returns payslips ordered by month descending.
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Payslip, error)
	Delete(ctx context.Context, id string) error
}
