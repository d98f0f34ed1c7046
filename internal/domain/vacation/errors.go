package vacation

import "errors"

var (
	ErrVacationNotFound   = errors.New("vacation not found")
	ErrInvalidTransition  = errors.New("invalid vacation status transition")
	ErrInvalidDateRange   = errors.New("vacation end date before start date")
	ErrInsufficientDays   = errors.New("insufficient vacation balance")
)
