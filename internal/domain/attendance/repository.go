package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	Update(ctx context.Context, rec Record) error
	// ListByEmployeeBetween returns records with from <= date < to,
	// ordered by date.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
	// SummarizeBetween sums hour buckets per employee over [from, to).
	SummarizeBetween(ctx context.Context, from, to time.Time) ([]HourSummary, error)
}
