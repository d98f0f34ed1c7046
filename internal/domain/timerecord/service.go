package timerecord

import "context"

// Service defines business logic for clock punches.
type Service interface {
	Punch(ctx context.Context, req PunchRequest) (TimeRecordResponse, error)
	Get(ctx context.Context, id string) (TimeRecordResponse, error)
	List(ctx context.Context, filter Filter) ([]TimeRecordResponse, error)

	// Approve marks a punch as validated by a supervisor. Approving an
	// already approved punch fails with ErrAlreadyApproved.
	Approve(ctx context.Context, id, approvedBy string) (TimeRecordResponse, error)

	// MonthlySummary totals an employee's approved punches for a period.
	MonthlySummary(ctx context.Context, employeeID string, year, month int) (MonthlySummaryResponse, error)
}
