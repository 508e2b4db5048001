package calendar

import (
	"context"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
)

// Resolver classifies dates as workday / paid leave / unpaid leave.
// An explicit override row wins; otherwise the weekday and the
// public-holiday list decide.
type Resolver struct {
	overrides calendar.Repository
	holidays  map[string]bool
}

func NewResolver(overrides calendar.Repository, publicHolidays []string) *Resolver {
	holidays := make(map[string]bool, len(publicHolidays))
	for _, d := range publicHolidays {
		holidays[d] = true
	}
	return &Resolver{overrides: overrides, holidays: holidays}
}

// Resolve returns the effective day type for date. Absence of an
// override is the normal case and falls through to the default; an
// override carrying an unrecognized value is ignored the same way.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) calendar.DayType {
	o, err := r.overrides.GetByDate(ctx, date)
	if err == nil && o.DayType.IsValid() {
		return o.DayType
	}
	return r.defaultType(date)
}

// Saturday is checked before the holiday list: a public holiday falling
// on Saturday keeps the unpaid classification.
func (r *Resolver) defaultType(date time.Time) calendar.DayType {
	switch date.Weekday() {
	case time.Sunday:
		return calendar.DayTypePaidLeave
	case time.Saturday:
		return calendar.DayTypeUnpaidLeave
	}
	if r.holidays[date.Format("2006-01-02")] {
		return calendar.DayTypePaidLeave
	}
	return calendar.DayTypeWorkday
}

// TypesBetween resolves every date in [from, to) with a single override
// query, keyed by YYYY-MM-DD.
func (r *Resolver) TypesBetween(ctx context.Context, from, to time.Time) (map[string]calendar.DayType, error) {
	rows, err := r.overrides.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]calendar.DayType, len(rows))
	for _, o := range rows {
		if o.DayType.IsValid() {
			byDate[o.Date.Format("2006-01-02")] = o.DayType
		}
	}

	result := make(map[string]calendar.DayType)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if t, ok := byDate[key]; ok {
			result[key] = t
			continue
		}
		result[key] = r.defaultType(d)
	}
	return result, nil
}

// WorkingDays counts the workday dates in (year, month).
func (r *Resolver) WorkingDays(ctx context.Context, year int, month time.Month) (int, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	types, err := r.TypesBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}
	working := 0
	for _, t := range types {
		if t == calendar.DayTypeWorkday {
			working++
		}
	}
	return working, nil
}
