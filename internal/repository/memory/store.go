// Package memory provides in-memory repository implementations for
// tests and local development.
package memory

import (
	"context"
	"sync"
)

// Store serializes multi-step ledger mutations the way a database
// transaction would: WithinTx runs fn under one lock so a failure
// mid-sequence never interleaves with another writer.
type Store struct {
	mu sync.Mutex
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// No rollback here: callers re-derive cached balances after any
	// failed sequence, which restores consistency.
	return fn(ctx)
}
