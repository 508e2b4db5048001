package advance

import (
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/employee"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a cash-advance request against a month's pay. At most one
// pending or approved request may exist per (employee, month).
type Request struct {
	ID             string                  `json:"id"`
	EmployeeID     string                  `json:"employee_id"`
	Month          string                  `json:"month"` // YYYY-MM
	EmploymentType employee.EmploymentType `json:"employment_type"`
	Amount         int64                   `json:"amount"`
	Reason         string                  `json:"reason"`
	Status         Status                  `json:"status"`
	AdminComment   string                  `json:"admin_comment"`
	ReviewedAt     *time.Time              `json:"reviewed_at"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
