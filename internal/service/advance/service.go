package advance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/config"
	"github.com/ashaile/humetix-backend-go/internal/domain/advance"
	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
)

// Service handles cash-advance requests against a month's pay.
type Service struct {
	requests  advance.Repository
	employees employee.Repository
	policy    config.PolicyConfig
	now       func() time.Time
}

func NewService(requests advance.Repository, employees employee.Repository, policy config.PolicyConfig) *Service {
	return &Service{requests: requests, employees: employees, policy: policy, now: time.Now}
}

// Submit files a request. The amount is capped per employment type and
// at most one pending or approved request may exist per month.
func (s *Service) Submit(ctx context.Context, employeeID, month string, amount int64, reason string) (advance.Request, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return advance.Request{}, err
	}

	limit := s.policy.AdvanceLimitWeekly
	if emp.EmploymentType == employee.EmploymentTypeShift {
		limit = s.policy.AdvanceLimitShift
	}
	if amount <= 0 || amount > limit {
		return advance.Request{}, fmt.Errorf("%w: limit %d", advance.ErrLimitExceeded, limit)
	}

	existing, err := s.requests.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return advance.Request{}, err
	}
	for _, req := range existing {
		if req.Status == advance.StatusPending || req.Status == advance.StatusApproved {
			return advance.Request{}, advance.ErrDuplicateRequest
		}
	}

	created, err := s.requests.Create(ctx, advance.Request{
		EmployeeID:     employeeID,
		Month:          month,
		EmploymentType: emp.EmploymentType,
		Amount:         amount,
		Reason:         reason,
		Status:         advance.StatusPending,
	})
	if err != nil {
		return advance.Request{}, fmt.Errorf("create advance request: %w", err)
	}

	slog.Info("advance requested",
		slog.String("employee_id", employeeID),
		slog.String("month", month),
		slog.Int64("amount", amount))
	return created, nil
}

// Approve transitions a pending request to approved.
func (s *Service) Approve(ctx context.Context, id, comment string) (advance.Request, error) {
	return s.review(ctx, id, advance.StatusApproved, comment)
}

// Reject transitions a pending request to rejected.
func (s *Service) Reject(ctx context.Context, id, comment string) (advance.Request, error) {
	return s.review(ctx, id, advance.StatusRejected, comment)
}

func (s *Service) review(ctx context.Context, id string, status advance.Status, comment string) (advance.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return advance.Request{}, err
	}
	if req.Status != advance.StatusPending {
		return advance.Request{}, advance.ErrAlreadyReviewed
	}

	reviewedAt := s.now()
	req.Status = status
	req.AdminComment = comment
	req.ReviewedAt = &reviewedAt
	if err := s.requests.Update(ctx, req); err != nil {
		return advance.Request{}, fmt.Errorf("update advance request: %w", err)
	}
	return req, nil
}

// ListMonth lists every request filed against the month.
func (s *Service) ListMonth(ctx context.Context, month string) ([]advance.Request, error) {
	return s.requests.ListByMonth(ctx, month)
}
