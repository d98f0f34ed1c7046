package tax

import "context"

type Repository interface {
	Create(ctx context.Context, bracket Bracket) (Bracket, error)
	GetByID(ctx context.Context, id string) (Bracket, error)
	// ListActive returns the active brackets for a tax type and year ordered
	// ascending by min value, the order the progressive INSS walk relies on.
	ListActive(ctx context.Context, taxType Type, year int) ([]Bracket, error)
	List(ctx context.Context, taxType *Type, year *int) ([]Bracket, error)
	Update(ctx context.Context, bracket Bracket) (Bracket, error)
	Delete(ctx context.Context, id string) error
}
