package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashaile/humetix-backend-go/internal/domain/payslip"
)

type PayslipRepository struct {
	mu    sync.RWMutex
	items map[string]payslip.Payslip
}

func NewPayslipRepository() *PayslipRepository {
	return &PayslipRepository{items: make(map[string]payslip.Payslip)}
}

func (r *PayslipRepository) Create(_ context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items[p.ID] = p
	return p, nil
}

func (r *PayslipRepository) GetByEmployeeMonth(_ context.Context, employeeID, month string) (payslip.Payslip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.EmployeeID == employeeID && p.Month == month {
			return p, nil
		}
	}
	return payslip.Payslip{}, payslip.ErrPayslipNotFound
}

func (r *PayslipRepository) Update(_ context.Context, p payslip.Payslip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return payslip.ErrPayslipNotFound
	}
	p.UpdatedAt = time.Now()
	r.items[p.ID] = p
	return nil
}

func (r *PayslipRepository) ListByMonth(_ context.Context, month string) ([]payslip.Payslip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []payslip.Payslip
	for _, p := range r.items {
		if p.Month == month {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *PayslipRepository) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]payslip.Payslip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []payslip.Payslip
	for _, p := range r.items {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PayslipRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return payslip.ErrPayslipNotFound
	}
	delete(r.items, id)
	return nil
}
