package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var hhmmRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

// IsValidClockTime reports whether s is an HH:MM time of day.
func IsValidClockTime(s string) bool {
	if !hhmmRegex.MatchString(s) {
		return false
	}
	hh, _ := strconv.Atoi(s[:2])
	mm, _ := strconv.Atoi(s[3:])
	return hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59
}

// IsValidDate checks YYYY-MM-DD.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidMonth checks YYYY-MM.
func IsValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

var birthDateRegex = regexp.MustCompile(`^\d{6}$`)

// IsValidBirthDate checks the 6-digit birth date credential (YYMMDD).
func IsValidBirthDate(s string) bool {
	return birthDateRegex.MatchString(s)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}
