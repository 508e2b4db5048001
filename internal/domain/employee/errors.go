package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee with this name and birth date already exists")
	ErrAlreadyResigned  = errors.New("employee already resigned")
	ErrNoHireDate       = errors.New("employee has no hire date")
)
