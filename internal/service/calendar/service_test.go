package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
	"github.com/ashaile/humetix-backend-go/internal/repository/memory"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolver_Resolve_WeekdayDefaults(t *testing.T) {
	r := NewResolver(memory.NewCalendarRepository(), nil)
	ctx := context.Background()

	assert.Equal(t, calendar.DayTypeWorkday, r.Resolve(ctx, date("2026-06-01")))     // Monday
	assert.Equal(t, calendar.DayTypeUnpaidLeave, r.Resolve(ctx, date("2026-06-06"))) // Saturday
	assert.Equal(t, calendar.DayTypePaidLeave, r.Resolve(ctx, date("2026-06-07")))   // Sunday
}

func TestResolver_Resolve_PublicHoliday(t *testing.T) {
	r := NewResolver(memory.NewCalendarRepository(), []string{"2026-01-01"})

	assert.Equal(t, calendar.DayTypePaidLeave, r.Resolve(context.Background(), date("2026-01-01")))
}

func TestResolver_Resolve_SaturdayHolidayStaysUnpaid(t *testing.T) {
	// 2026-02-14 is a Saturday; the Saturday classification wins over
	// the holiday list.
	r := NewResolver(memory.NewCalendarRepository(), []string{"2026-02-14"})

	assert.Equal(t, calendar.DayTypeUnpaidLeave, r.Resolve(context.Background(), date("2026-02-14")))
}

func TestResolver_Resolve_OverrideWins(t *testing.T) {
	overrides := memory.NewCalendarRepository()
	r := NewResolver(overrides, nil)
	ctx := context.Background()

	_, err := overrides.Upsert(ctx, calendar.Override{
		Date:    date("2026-06-01"), // Monday
		DayType: calendar.DayTypeUnpaidLeave,
		Note:    "facility closure",
	})
	require.NoError(t, err)

	assert.Equal(t, calendar.DayTypeUnpaidLeave, r.Resolve(ctx, date("2026-06-01")))
}

func TestResolver_TypesBetween(t *testing.T) {
	overrides := memory.NewCalendarRepository()
	r := NewResolver(overrides, []string{"2026-06-10"})
	ctx := context.Background()

	_, err := overrides.Upsert(ctx, calendar.Override{
		Date:    date("2026-06-02"),
		DayType: calendar.DayTypePaidLeave,
	})
	require.NoError(t, err)

	types, err := r.TypesBetween(ctx, date("2026-06-01"), date("2026-06-08"))
	require.NoError(t, err)

	assert.Len(t, types, 7)
	assert.Equal(t, calendar.DayTypeWorkday, types["2026-06-01"])
	assert.Equal(t, calendar.DayTypePaidLeave, types["2026-06-02"]) // override
	assert.Equal(t, calendar.DayTypeUnpaidLeave, types["2026-06-06"])
	assert.Equal(t, calendar.DayTypePaidLeave, types["2026-06-07"])
}

func TestResolver_WorkingDays(t *testing.T) {
	r := NewResolver(memory.NewCalendarRepository(), []string{"2026-06-10"})

	// June 2026: 30 days, 4 Saturdays, 4 Sundays, 1 weekday holiday.
	days, err := r.WorkingDays(context.Background(), 2026, time.June)
	require.NoError(t, err)
	assert.Equal(t, 21, days)
}
