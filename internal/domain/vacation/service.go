package vacation

import "context"

// Service defines business logic for vacation requests and balances.
type Service interface {
	Request(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
	Get(ctx context.Context, id string) (VacationResponse, error)
	List(ctx context.Context, filter Filter) ([]VacationResponse, error)

	// Transition moves a request along the approval state machine.
	Transition(ctx context.Context, id, actorID string, req TransitionRequest) (VacationResponse, error)

	// Balance reports earned, taken and remaining days as of today.
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)

	// Proportional values the accrued vacation between hire and today.
	Proportional(ctx context.Context, employeeID string) (ProportionalResponse, error)
}
