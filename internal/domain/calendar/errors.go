package calendar

import "errors"

var (
	ErrOverrideNotFound = errors.New("calendar override not found")
	ErrInvalidDayType   = errors.New("invalid calendar day type")
)
