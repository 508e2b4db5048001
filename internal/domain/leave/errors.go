package leave

import "errors"

var (
	ErrAccrualNotFound  = errors.New("leave accrual not found")
	ErrUsageNotFound    = errors.New("leave usage not found")
	ErrBalanceNotFound  = errors.New("leave balance not found")
	ErrDuplicateAccrual = errors.New("leave accrual already exists for this month")
)
