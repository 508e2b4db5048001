package wage

import "errors"

var (
	ErrConfigNotFound = errors.New("wage config not found")
	ErrInvalidScope   = errors.New("invalid wage config scope")
)
