package payroll

import "context"

type Repository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Payroll, error)
	// GetByEmployeePeriodForUpdate takes a row lock on the payroll for the
	// period. Must run inside a transaction; it serializes concurrent
	// processing of the same (employee, month, year).
	GetByEmployeePeriodForUpdate(ctx context.Context, employeeID string, month, year int) (Payroll, error)
	List(ctx context.Context, filter Filter) ([]Payroll, int64, error)
	Update(ctx context.Context, p Payroll) (Payroll, error)
}

type Filter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Processed  *bool
	Page       int
	Limit      int
}
