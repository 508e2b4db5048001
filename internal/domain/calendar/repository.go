package calendar

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert creates or replaces the override for its date.
	Upsert(ctx context.Context, o Override) (Override, error)
	GetByDate(ctx context.Context, date time.Time) (Override, error)
	// ListBetween returns overrides with from <= date < to, ordered by date.
	ListBetween(ctx context.Context, from, to time.Time) ([]Override, error)
	Delete(ctx context.Context, id string) error
}
