package leave

import "context"

// AccrualRepository - interface for leave_accruals table
type AccrualRepository interface {
	Create(ctx context.Context, a Accrual) (Accrual, error)
	GetByID(ctx context.Context, id string) (Accrual, error)
	// ListByEmployeeYear returns the year's accruals ordered by month.
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Accrual, error)
	// ListOpenByEmployee returns accruals with remaining > 0 ordered by
	// (year asc, month asc), the FIFO consumption order.
	ListOpenByEmployee(ctx context.Context, employeeID string) ([]Accrual, error)
	Update(ctx context.Context, a Accrual) error
	Delete(ctx context.Context, id string) error
}

// UsageRepository - interface for leave_usages table
type UsageRepository interface {
	Create(ctx context.Context, u Usage) (Usage, error)
	GetByID(ctx context.Context, id string) (Usage, error)
	// ListByEmployeeYear returns usages whose use date falls in year,
	// ordered by use date.
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Usage, error)
	ListByAccrual(ctx context.Context, accrualID string) ([]Usage, error)
	Update(ctx context.Context, u Usage) error
	Delete(ctx context.Context, id string) error
}

// BalanceRepository - interface for leave_balances table
type BalanceRepository interface {
	Upsert(ctx context.Context, b Balance) (Balance, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) (Balance, error)
	ListByYear(ctx context.Context, year int) ([]Balance, error)
}
