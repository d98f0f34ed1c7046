package notification

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, filter Filter) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, employeeID string) (int, error)
	MarkRead(ctx context.Context, ids []string, employeeID string) error
	MarkAllRead(ctx context.Context, employeeID string) error

	// ExistsSince reports whether a notification of the given type whose title
	// contains titlePart was created for the employee at or after since. Used
	// to dedupe the payroll-processed notification.
	ExistsSince(ctx context.Context, employeeID string, notifType Type, titlePart string, since time.Time) (bool, error)
}

type Filter struct {
	EmployeeID *string
	Type       *Type
	Unread     *bool
	Page       int
	Limit      int
}
