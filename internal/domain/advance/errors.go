package advance

import "errors"

var (
	ErrRequestNotFound  = errors.New("advance request not found")
	ErrDuplicateRequest = errors.New("a pending or approved advance already exists for this month")
	ErrAlreadyReviewed  = errors.New("advance request already reviewed")
	ErrLimitExceeded    = errors.New("advance amount exceeds the limit for this employment type")
)
