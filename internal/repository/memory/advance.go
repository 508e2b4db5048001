package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashaile/humetix-backend-go/internal/domain/advance"
)

type AdvanceRepository struct {
	mu    sync.RWMutex
	items map[string]advance.Request
}

func NewAdvanceRepository() *AdvanceRepository {
	return &AdvanceRepository{items: make(map[string]advance.Request)}
}

func (r *AdvanceRepository) Create(_ context.Context, req advance.Request) (advance.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	r.items[req.ID] = req
	return req, nil
}

func (r *AdvanceRepository) GetByID(_ context.Context, id string) (advance.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.items[id]
	if !ok {
		return advance.Request{}, advance.ErrRequestNotFound
	}
	return req, nil
}

func (r *AdvanceRepository) ListByEmployeeMonth(_ context.Context, employeeID, month string) ([]advance.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []advance.Request
	for _, req := range r.items {
		if req.EmployeeID == employeeID && req.Month == month {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *AdvanceRepository) ListByMonth(_ context.Context, month string) ([]advance.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []advance.Request
	for _, req := range r.items {
		if req.Month == month {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *AdvanceRepository) Update(_ context.Context, req advance.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[req.ID]; !ok {
		return advance.ErrRequestNotFound
	}
	req.UpdatedAt = time.Now()
	r.items[req.ID] = req
	return nil
}

func (r *AdvanceRepository) SumApproved(_ context.Context, employeeID, month string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, req := range r.items {
		if req.EmployeeID == employeeID && req.Month == month && req.Status == advance.StatusApproved {
			total += req.Amount
		}
	}
	return total, nil
}
