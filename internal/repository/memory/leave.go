package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashaile/humetix-backend-go/internal/domain/leave"
)

type LeaveAccrualRepository struct {
	mu    sync.RWMutex
	items map[string]leave.Accrual
}

func NewLeaveAccrualRepository() *LeaveAccrualRepository {
	return &LeaveAccrualRepository{items: make(map[string]leave.Accrual)}
}

func (r *LeaveAccrualRepository) Create(_ context.Context, a leave.Accrual) (leave.Accrual, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.EmployeeID == a.EmployeeID && existing.Year == a.Year && existing.Month == a.Month {
			return leave.Accrual{}, leave.ErrDuplicateAccrual
		}
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.items[a.ID] = a
	return a, nil
}

func (r *LeaveAccrualRepository) GetByID(_ context.Context, id string) (leave.Accrual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return leave.Accrual{}, leave.ErrAccrualNotFound
	}
	return a, nil
}

func (r *LeaveAccrualRepository) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.Accrual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Accrual
	for _, a := range r.items {
		if a.EmployeeID == employeeID && a.Year == year {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *LeaveAccrualRepository) ListOpenByEmployee(_ context.Context, employeeID string) ([]leave.Accrual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Accrual
	for _, a := range r.items {
		if a.EmployeeID == employeeID && a.Remaining > 0 {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

func (r *LeaveAccrualRepository) Update(_ context.Context, a leave.Accrual) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[a.ID]; !ok {
		return leave.ErrAccrualNotFound
	}
	a.UpdatedAt = time.Now()
	r.items[a.ID] = a
	return nil
}

func (r *LeaveAccrualRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return leave.ErrAccrualNotFound
	}
	delete(r.items, id)
	return nil
}

type LeaveUsageRepository struct {
	mu    sync.RWMutex
	items map[string]leave.Usage
}

func NewLeaveUsageRepository() *LeaveUsageRepository {
	return &LeaveUsageRepository{items: make(map[string]leave.Usage)}
}

func (r *LeaveUsageRepository) Create(_ context.Context, u leave.Usage) (leave.Usage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.items[u.ID] = u
	return u, nil
}

func (r *LeaveUsageRepository) GetByID(_ context.Context, id string) (leave.Usage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return leave.Usage{}, leave.ErrUsageNotFound
	}
	return u, nil
}

func (r *LeaveUsageRepository) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.Usage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Usage
	for _, u := range r.items {
		if u.EmployeeID == employeeID && u.UseDate.Year() == year {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UseDate.Before(out[j].UseDate) })
	return out, nil
}

func (r *LeaveUsageRepository) ListByAccrual(_ context.Context, accrualID string) ([]leave.Usage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Usage
	for _, u := range r.items {
		if u.AccrualID != nil && *u.AccrualID == accrualID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UseDate.Before(out[j].UseDate) })
	return out, nil
}

func (r *LeaveUsageRepository) Update(_ context.Context, u leave.Usage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[u.ID]; !ok {
		return leave.ErrUsageNotFound
	}
	u.UpdatedAt = time.Now()
	r.items[u.ID] = u
	return nil
}

func (r *LeaveUsageRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return leave.ErrUsageNotFound
	}
	delete(r.items, id)
	return nil
}

type LeaveBalanceRepository struct {
	mu    sync.RWMutex
	items map[string]leave.Balance
}

func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{items: make(map[string]leave.Balance)}
}

func balanceKey(employeeID string, year int) string {
	return fmt.Sprintf("%s/%d", employeeID, year)
}

func (r *LeaveBalanceRepository) Upsert(_ context.Context, b leave.Balance) (leave.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := balanceKey(b.EmployeeID, b.Year)
	if existing, ok := r.items[key]; ok {
		b.ID = existing.ID
		b.CreatedAt = existing.CreatedAt
	} else {
		b.ID = uuid.NewString()
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	r.items[key] = b
	return b, nil
}

func (r *LeaveBalanceRepository) GetByEmployeeYear(_ context.Context, employeeID string, year int) (leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[balanceKey(employeeID, year)]
	if !ok {
		return leave.Balance{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (r *LeaveBalanceRepository) ListByYear(_ context.Context, year int) ([]leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Balance
	for _, b := range r.items {
		if b.Year == year {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}
