package timerecord

import "errors"

var (
	ErrTimeRecordNotFound = errors.New("time record not found")
	ErrAlreadyApproved    = errors.New("time record already approved")
	ErrInvalidRecordType  = errors.New("invalid time record type")
)
