package calendar

import "time"

// DayType is the classification governing how worked hours on a date
// are paid.
type DayType string

const (
	DayTypeWorkday     DayType = "workday"
	DayTypePaidLeave   DayType = "paid_leave"
	DayTypeUnpaidLeave DayType = "unpaid_leave"
)

// IsValid reports whether t is one of the three recognized values.
func (t DayType) IsValid() bool {
	switch t {
	case DayTypeWorkday, DayTypePaidLeave, DayTypeUnpaidLeave:
		return true
	}
	return false
}

// Override pins a single date to a day type, taking precedence over the
// weekday/public-holiday default.
type Override struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	DayType   DayType   `json:"day_type"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
