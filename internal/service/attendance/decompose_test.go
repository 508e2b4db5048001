package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
)

func testPolicy() Policy {
	return Policy{
		StandardHours:  8.0,
		BreakHours:     1.0,
		NightStartHour: 22,
		NightEndHour:   6,
	}
}

func TestDecompose_StandardWorkday(t *testing.T) {
	h := Decompose("09:00", "18:00", calendar.DayTypeWorkday, testPolicy())

	assert.Equal(t, 8.0, h.Total)
	assert.Equal(t, 0.0, h.Overtime)
	assert.Equal(t, 0.0, h.Night)
	assert.Equal(t, 0.0, h.Holiday)
}

func TestDecompose_WorkdayWithOvertime(t *testing.T) {
	h := Decompose("09:00", "20:00", calendar.DayTypeWorkday, testPolicy())

	assert.Equal(t, 10.0, h.Total)
	assert.Equal(t, 2.0, h.Overtime)
	assert.Equal(t, 0.0, h.Night)
	assert.Equal(t, 0.0, h.Holiday)
}

func TestDecompose_NightShiftAcrossMidnight(t *testing.T) {
	h := Decompose("22:00", "06:00", calendar.DayTypeWorkday, testPolicy())

	assert.Equal(t, 7.0, h.Total)
	assert.Equal(t, 0.0, h.Overtime)
	assert.Equal(t, 7.0, h.Night)
	assert.Equal(t, 0.0, h.Holiday)
}

func TestDecompose_UnpaidHolidayIsAllHolidayTime(t *testing.T) {
	// Saturday shift: the whole day is premium-holiday time.
	h := Decompose("09:00", "18:00", calendar.DayTypeUnpaidLeave, testPolicy())

	assert.Equal(t, 8.0, h.Total)
	assert.Equal(t, 0.0, h.Overtime)
	assert.Equal(t, 8.0, h.Holiday)
}

func TestDecompose_PaidHolidaySplitsExcessIntoOvertime(t *testing.T) {
	// Sunday shift past the standard day: standard-day portion is
	// holiday time, the rest is overtime.
	h := Decompose("08:00", "19:00", calendar.DayTypePaidLeave, testPolicy())

	assert.Equal(t, 10.0, h.Total)
	assert.Equal(t, 8.0, h.Holiday)
	assert.Equal(t, 2.0, h.Overtime)
}

func TestDecompose_BreakConsumesShortShift(t *testing.T) {
	h := Decompose("10:00", "11:00", calendar.DayTypeWorkday, testPolicy())

	assert.Equal(t, 0.0, h.Total)
	assert.Equal(t, 0.0, h.Overtime)
	assert.Equal(t, 0.0, h.Night)
	assert.Equal(t, 0.0, h.Holiday)
}

func TestDecompose_EveningShiftPartialNight(t *testing.T) {
	// 14:00-23:00: one hour falls inside the night window, but the
	// break is charged against it on a late-starting shift only when
	// the shift qualifies as a night shift (start >= 15:00).
	h := Decompose("15:00", "23:00", calendar.DayTypeWorkday, testPolicy())

	assert.Equal(t, 7.0, h.Total)
	assert.Equal(t, 0.0, h.Night) // one night hour minus the break
}

func TestDecompose_DayShiftNightWindowUntouchedByBreak(t *testing.T) {
	// A morning shift never reaches the night window; the break must
	// not produce negative night time.
	h := Decompose("06:00", "15:00", calendar.DayTypeWorkday, testPolicy())

	assert.Equal(t, 8.0, h.Total)
	assert.Equal(t, 0.0, h.Night)
}
