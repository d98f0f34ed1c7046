package payroll

import "context"

// Service defines business logic for monthly payslips.
type Service interface {
	// Save creates or updates the payslip for one employee and period,
	// recomputing taxes unless the slip is already processed.
	Save(ctx context.Context, req SavePayrollRequest) (PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter Filter) ([]PayrollResponse, error)

	// Recalculate re-runs the automatic calculation on an unprocessed slip.
	Recalculate(ctx context.Context, id string) (PayrollResponse, error)

	// ProcessPeriod closes the month for every active employee. Each
	// employee is handled independently; one failure does not abort the
	// rest.
	ProcessPeriod(ctx context.Context, req ProcessPeriodRequest) (ProcessPeriodResponse, error)
}
