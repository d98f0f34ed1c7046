package tax

import "context"

// Service manages the versioned withholding bracket tables.
type Service interface {
	CreateBracket(ctx context.Context, req CreateBracketRequest) (BracketResponse, error)
	GetBracket(ctx context.Context, id string) (BracketResponse, error)
	ListBrackets(ctx context.Context, taxType *Type, year *int) ([]BracketResponse, error)
	UpdateBracket(ctx context.Context, id string, req UpdateBracketRequest) (BracketResponse, error)
	DeleteBracket(ctx context.Context, id string) error
}
