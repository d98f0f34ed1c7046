package employee

import "context"

// Service defines business logic for employee records and their
// career history.
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter) (ListEmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	History(ctx context.Context, employeeID string) ([]HistoryResponse, error)

	AddDependent(ctx context.Context, employeeID string, dep Dependent) (Dependent, error)
	ListDependents(ctx context.Context, employeeID string) ([]Dependent, error)

	AddDocument(ctx context.Context, employeeID string, doc Document) (Document, error)
	ListDocuments(ctx context.Context, employeeID string) ([]Document, error)
}
