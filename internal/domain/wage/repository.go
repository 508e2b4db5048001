package wage

import "context"

type Repository interface {
	// GetByScopeTarget fetches one layer. targetID is nil for system scope.
	GetByScopeTarget(ctx context.Context, scope Scope, targetID *string) (Config, error)
	// Upsert creates or replaces the layer for (scope, target).
	Upsert(ctx context.Context, cfg Config) (Config, error)
	ListByScope(ctx context.Context, scope Scope) ([]Config, error)
	Delete(ctx context.Context, id string) error
}
