package timerecord

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)
	GetByID(ctx context.Context, id string) (TimeRecord, error)
	List(ctx context.Context, filter Filter) ([]TimeRecord, int64, error)
	Approve(ctx context.Context, id, approvedBy string) (TimeRecord, error)

	// ListApprovedForMonth returns all approved punches for an employee in a
	// month, ordered by date then punch time.
	ListApprovedForMonth(ctx context.Context, employeeID string, year int, month int) ([]TimeRecord, error)

	// PendingBySupervisor aggregates unapproved punches recorded on or after
	// since, grouped by the punching employee's supervisor. Employees without
	// a supervisor are excluded.
	PendingBySupervisor(ctx context.Context, since time.Time) ([]PendingSummary, error)
}

type Filter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Approved   *bool
	Page       int
	Limit      int
}
