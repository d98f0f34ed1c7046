package vacation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v Vacation) (Vacation, error)
	GetByID(ctx context.Context, id string) (Vacation, error)
	List(ctx context.Context, filter Filter) ([]Vacation, int64, error)
	Update(ctx context.Context, v Vacation) (Vacation, error)

	// ListCountedAsTaken returns vacations in approved or taken status whose
	// acquisition period started on or before asOf. These are the rows the
	// balance computation subtracts from the earned total.
	ListCountedAsTaken(ctx context.Context, employeeID string, asOf time.Time) ([]Vacation, error)
}

type Filter struct {
	EmployeeID *string
	Status     *Status
	Page       int
	Limit      int
}
