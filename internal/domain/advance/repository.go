package advance

import "context"

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]Request, error)
	ListByMonth(ctx context.Context, month string) ([]Request, error)
	Update(ctx context.Context, req Request) error
	// SumApproved totals approved amounts for (employee, month), the
	// payslip advance deduction.
	SumApproved(ctx context.Context, employeeID, month string) (int64, error)
}
