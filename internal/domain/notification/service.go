package notification

import "context"

// Service defines business logic for in-app notifications and the
// scheduled alert sweeps.
type Service interface {
	List(ctx context.Context, filter Filter) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, employeeID string) (int, error)
	MarkRead(ctx context.Context, employeeID string, ids []string) error
	MarkAllRead(ctx context.Context, employeeID string) error

	// Sweep runs all scheduled alert checks and reports how many
	// notifications each produced.
	Sweep(ctx context.Context) (SweepResult, error)
}
