package leave

// MonthCell is one month of the per-employee grid shown on the leave
// detail surface.
type MonthCell struct {
	Accrued   bool    `json:"accrued"`
	Days      float64 `json:"days"`
	Remaining float64 `json:"remaining"`
}

// Summary totals one employee-year, carryover included.
type Summary struct {
	Entitled  float64 `json:"entitled"`
	Carryover float64 `json:"carryover"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
	UsedPct   int     `json:"used_pct"`
}

// Detail is the full per-employee-year ledger view.
type Detail struct {
	EmployeeID        string            `json:"employee_id"`
	Year              int               `json:"year"`
	Accruals          []Accrual         `json:"accruals"`
	Usages            []Usage           `json:"usages"`
	CarryoverAccruals []Accrual         `json:"carryover_accruals"`
	CarryoverTotal    float64           `json:"carryover_total"`
	Summary           Summary           `json:"summary"`
	MonthlyGrid       map[int]MonthCell `json:"monthly_grid"`
}

// SyncResult reports a year-wide ledger sync run.
type SyncResult struct {
	Synced      int `json:"synced"`
	AutoCreated int `json:"auto_created"`
	UsagesAdded int `json:"usages_added"`
}
