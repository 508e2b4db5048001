package attendance

import "errors"

var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
	ErrInvalidWorkType = errors.New("invalid work type")
	ErrClockTimeNeeded = errors.New("clock-in and clock-out are required for this work type")
)
