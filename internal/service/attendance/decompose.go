package attendance

import (
	"math"
	"strconv"

	"github.com/ashaile/humetix-backend-go/internal/domain/calendar"
)

const minutesPerDay = 24 * 60

// Policy carries the time constants decomposition needs.
type Policy struct {
	StandardHours  float64
	BreakHours     float64
	NightStartHour int
	NightEndHour   int
}

// Hours are the four buckets derived from one clock-in/clock-out pair.
type Hours struct {
	Total    float64
	Overtime float64
	Night    float64
	Holiday  float64
}

// Decompose converts a clock pair plus the day classification into hour
// buckets. clockIn and clockOut are validated HH:MM strings; a clock-out
// at or before clock-in means the shift crosses midnight.
func Decompose(clockIn, clockOut string, dayType calendar.DayType, pol Policy) Hours {
	inMin := toMinutes(clockIn)
	outMin := toMinutes(clockOut)

	var rawMinutes int
	if outMin <= inMin {
		rawMinutes = (minutesPerDay - inMin) + outMin
	} else {
		rawMinutes = outMin - inMin
	}

	breakMin := int(pol.BreakHours * 60)
	workedMin := rawMinutes - breakMin
	if workedMin < 0 {
		workedMin = 0
	}
	total := round2(float64(workedMin) / 60)

	var overtime, holiday float64
	switch dayType {
	case calendar.DayTypePaidLeave:
		// Up to the standard day is holiday-premium time; the excess
		// earns ordinary overtime premium.
		holiday = round2(math.Min(total, pol.StandardHours))
		overtime = round2(math.Max(0, total-pol.StandardHours))
	case calendar.DayTypeUnpaidLeave:
		// The business does not operate this day at all; the whole
		// shift is premium-holiday time.
		holiday = total
	default:
		overtime = round2(math.Max(0, total-pol.StandardHours))
	}

	night := nightHours(inMin, outMin, breakMin, pol)

	return Hours{Total: total, Overtime: overtime, Night: night, Holiday: holiday}
}

func nightHours(inMin, outMin, breakMin int, pol Policy) float64 {
	nightStart := pol.NightStartHour * 60
	nightEnd := pol.NightEndHour * 60

	var nightTotal int
	if outMin <= inMin {
		// Midnight wraparound: split the worked interval.
		nightTotal = minutesInRange(inMin, minutesPerDay, nightStart, minutesPerDay) +
			minutesInRange(0, outMin, 0, nightEnd)
	} else {
		nightTotal = minutesInRange(inMin, outMin, nightStart, nightEnd)
	}

	// The break is only charged against night minutes on night shifts;
	// a day shift's break falls outside the window and must not be
	// subtracted twice.
	isNightShift := inMin >= 15*60 || inMin < nightEnd
	if isNightShift {
		nightTotal -= breakMin
	}
	if nightTotal < 0 {
		nightTotal = 0
	}
	return round2(float64(nightTotal) / 60)
}

// minutesInRange returns the overlap of [startMin, endMin) with the
// range [rangeStart, rangeEnd); a range that wraps midnight is split.
func minutesInRange(startMin, endMin, rangeStart, rangeEnd int) int {
	if rangeStart >= rangeEnd {
		return minutesInRange(startMin, endMin, rangeStart, minutesPerDay) +
			minutesInRange(startMin, endMin, 0, rangeEnd)
	}
	overlapStart := max(startMin, rangeStart)
	overlapEnd := min(endMin, rangeEnd)
	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

func toMinutes(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
