package payslip

import (
	"context"

	"github.com/ashaile/humetix-backend-go/internal/domain/attendance"
	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
	attendanceService "github.com/ashaile/humetix-backend-go/internal/service/attendance"
)

// attendanceInfo counts the month's scheduled workdays against the
// employee's attendance. Full-attendance weeks earn the weekly holiday
// allowance; a week with any missed scheduled day forfeits it.
type attendanceInfo struct {
	AbsentDays   int
	NonFullWeeks int
	AttendedDays int
	FullWeeks    int
}

// attendedForPay: leaving early still counts as a worked day for pay
// purposes, unlike the full-attendance check for monthly leave grants.
func attendedForPay(t attendance.WorkType) bool {
	return t.CountsAsAttended() || t == attendance.WorkTypeEarly
}

func (c *Calculator) attendanceInfo(ctx context.Context, employeeID, month string) (attendanceInfo, error) {
	from, to, err := attendanceService.MonthRange(month)
	if err != nil {
		return attendanceInfo{}, err
	}

	types, err := c.resolver.TypesBetween(ctx, from, to)
	if err != nil {
		return attendanceInfo{}, err
	}

	type weekKey struct{ year, week int }
	scheduled := make(map[string]bool)
	weeks := make(map[weekKey]map[string]bool)

	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if types[key] != calendar.DayTypeWorkday {
			continue
		}
		scheduled[key] = true
		y, w := d.ISOWeek()
		wk := weekKey{y, w}
		if weeks[wk] == nil {
			weeks[wk] = make(map[string]bool)
		}
		weeks[wk][key] = true
	}
	if len(scheduled) == 0 {
		return attendanceInfo{}, nil
	}

	records, err := c.records.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return attendanceInfo{}, err
	}
	attended := make(map[string]bool)
	for _, r := range records {
		if attendedForPay(r.WorkType) {
			attended[r.Date.Format("2006-01-02")] = true
		}
	}

	var info attendanceInfo
	for day := range scheduled {
		if attended[day] {
			info.AttendedDays++
		} else {
			info.AbsentDays++
		}
	}

	for _, weekScheduled := range weeks {
		full := true
		for day := range weekScheduled {
			if !attended[day] {
				full = false
				break
			}
		}
		if full {
			info.FullWeeks++
		} else {
			info.NonFullWeeks++
		}
	}
	return info, nil
}
