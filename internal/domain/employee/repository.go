package employee

import (
	"context"
	"time"
)

// Repository owns the employee aggregate: employees, their dependents and
// their documents.
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByNumber(ctx context.Context, number string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) (Employee, error)

	// ListActiveWithHireDate returns active employees that have a hire date,
	// the population the vacation-expiry sweep walks.
	ListActiveWithHireDate(ctx context.Context) ([]Employee, error)

	CountTaxDependents(ctx context.Context, employeeID string) (int, error)
	CreateDependent(ctx context.Context, dep Dependent) (Dependent, error)
	ListDependents(ctx context.Context, employeeID string) ([]Dependent, error)

	CreateDocument(ctx context.Context, doc Document) (Document, error)
	ListDocuments(ctx context.Context, employeeID string) ([]Document, error)
	// ListDocumentsExpiringBetween returns active documents whose expiry date
	// falls in [from, to], joined with the owning employee's name.
	ListDocumentsExpiringBetween(ctx context.Context, from, to time.Time) ([]Document, error)
}

// HistoryRepository persists append-only audit rows.
type HistoryRepository interface {
	Create(ctx context.Context, h History) (History, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]History, error)
}

type Filter struct {
	Status       *Status
	DepartmentID *string
	Search       string
	Page         int
	Limit        int
}
