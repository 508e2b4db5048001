package leave

import "time"

type AccrualType string

const (
	// AccrualTypeAnnualBulk is the once-a-year grant for employees with
	// one or more years of tenure (month 0).
	AccrualTypeAnnualBulk AccrualType = "annual_bulk"
	// AccrualTypeMonthly is the one-day grant per full month for
	// first-year employees.
	AccrualTypeMonthly AccrualType = "monthly"
	// AccrualTypeAutoMonthly is a monthly grant issued by the
	// attendance-driven sweep.
	AccrualTypeAutoMonthly AccrualType = "auto_monthly"
	// AccrualTypeManual is an admin-entered grant.
	AccrualTypeManual AccrualType = "manual"
)

// Accrual is a discrete grant of leave days with a FIFO remaining
// counter. Month 0 denotes the yearly bulk grant; 1-12 a monthly grant.
type Accrual struct {
	ID          string      `json:"id"`
	EmployeeID  string      `json:"employee_id"`
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Type        AccrualType `json:"type"`
	Days        float64     `json:"days"`
	Remaining   float64     `json:"remaining"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Usage records consumption drawn against one accrual. A nil AccrualID
// marks an overdraft beyond all remaining grants.
type Usage struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	AccrualID   *string   `json:"accrual_id"`
	UseDate     time.Time `json:"use_date"`
	Days        float64   `json:"days"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Balance is the derived per-year cache. It is always recomputable from
// accruals and usages and is re-derived after every ledger mutation.
type Balance struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Year       int       `json:"year"`
	Entitled   float64   `json:"entitled"`
	Used       float64   `json:"used"`
	Remaining  float64   `json:"remaining"`
	Carryover  float64   `json:"carryover"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
