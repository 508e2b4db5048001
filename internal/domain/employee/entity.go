package employee

import (
	"time"
)

type Employee struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	BirthDate      string         `json:"birth_date"` // 6-digit YYMMDD, secondary credential
	EmploymentType EmploymentType `json:"employment_type"`
	HireDate       *time.Time     `json:"hire_date"`
	ResignDate     *time.Time     `json:"resign_date"`
	IsActive       bool           `json:"is_active"`
	SiteID         *string        `json:"site_id"`
	Insurance      *InsuranceType `json:"insurance"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type EmploymentType string

const (
	EmploymentTypeWeekly EmploymentType = "weekly"
	EmploymentTypeShift  EmploymentType = "shift"
)

type InsuranceType string

const (
	// InsuranceFull enrolls the employee in all four statutory insurances.
	InsuranceFull InsuranceType = "full"
	// InsuranceFlat withholds a flat 3.3% income tax instead.
	InsuranceFlat InsuranceType = "flat"
)

// InsuranceElection returns the effective election, defaulting to flat
// withholding when none is recorded.
func (e Employee) InsuranceElection() InsuranceType {
	if e.Insurance != nil && *e.Insurance == InsuranceFull {
		return InsuranceFull
	}
	return InsuranceFlat
}

// TenureMonths returns whole calendar months employed at ref.
func (e Employee) TenureMonths(ref time.Time) int {
	if e.HireDate == nil {
		return 0
	}
	h := *e.HireDate
	if h.After(ref) {
		return 0
	}
	months := (ref.Year()-h.Year())*12 + int(ref.Month()) - int(h.Month())
	if ref.Day() < h.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// TenureYears returns whole years employed at ref.
func (e Employee) TenureYears(ref time.Time) int {
	return e.TenureMonths(ref) / 12
}

// ServiceDays returns calendar days between hire and end. When the
// employee has resigned, the resignation date bounds the period.
func (e Employee) ServiceDays(now time.Time) int {
	if e.HireDate == nil {
		return 0
	}
	end := now
	if e.ResignDate != nil {
		end = *e.ResignDate
	}
	return int(end.Sub(*e.HireDate).Hours() / 24)
}
