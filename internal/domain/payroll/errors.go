package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll not found")
	ErrPayrollAlreadyExists = errors.New("payroll already exists for this period")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrEmployeeNotFound     = errors.New("employee not found")
)
