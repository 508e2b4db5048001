package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetActiveByCredentials resolves the (name, birth date) identity pair
	// among active employees only.
	GetActiveByCredentials(ctx context.Context, name, birthDate string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
}
