// Package taxtable manages the bracket tables the withholding
// calculation reads from.
package taxtable

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type ServiceImpl struct {
	db      *database.DB
	taxRepo tax.Repository
}

func NewService(db *database.DB, taxRepo tax.Repository) tax.Service {
	return &ServiceImpl{db: db, taxRepo: taxRepo}
}

func toResponse(b tax.Bracket) tax.BracketResponse {
	return tax.BracketResponse{
		ID:        b.ID,
		Type:      string(b.Type),
		Year:      b.Year,
		Month:     b.Month,
		MinValue:  b.MinValue,
		MaxValue:  b.MaxValue,
		Rate:      b.Rate,
		Deduction: b.Deduction,
		IsActive:  b.IsActive,
	}
}

// overlaps reports whether two ranges intersect. A nil max is an
// open-ended range.
func overlaps(a, b tax.Bracket) bool {
	if a.MaxValue != nil && a.MaxValue.LessThan(b.MinValue) {
		return false
	}
	if b.MaxValue != nil && b.MaxValue.LessThan(a.MinValue) {
		return false
	}
	return true
}

func (s *ServiceImpl) CreateBracket(ctx context.Context, req tax.CreateBracketRequest) (tax.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return tax.BracketResponse{}, err
	}

	bracket := tax.Bracket{
		Type:      tax.Type(req.Type),
		Year:      req.Year,
		Month:     req.Month,
		MinValue:  req.MinValue,
		MaxValue:  req.MaxValue,
		Rate:      req.Rate,
		Deduction: req.Deduction,
		IsActive:  true,
	}

	existing, err := s.taxRepo.ListActive(ctx, bracket.Type, bracket.Year)
	if err != nil {
		return tax.BracketResponse{}, fmt.Errorf("failed to list brackets: %w", err)
	}
	for _, other := range existing {
		if overlaps(bracket, other) {
			return tax.BracketResponse{}, tax.ErrBracketOverlap
		}
	}

	created, err := s.taxRepo.Create(ctx, bracket)
	if err != nil {
		return tax.BracketResponse{}, fmt.Errorf("failed to create bracket: %w", err)
	}
	return toResponse(created), nil
}

func (s *ServiceImpl) GetBracket(ctx context.Context, id string) (tax.BracketResponse, error) {
	b, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tax.BracketResponse{}, tax.ErrBracketNotFound
		}
		return tax.BracketResponse{}, fmt.Errorf("failed to get bracket: %w", err)
	}
	return toResponse(b), nil
}

func (s *ServiceImpl) ListBrackets(ctx context.Context, taxType *tax.Type, year *int) ([]tax.BracketResponse, error) {
	rows, err := s.taxRepo.List(ctx, taxType, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list brackets: %w", err)
	}
	resp := make([]tax.BracketResponse, 0, len(rows))
	for _, b := range rows {
		resp = append(resp, toResponse(b))
	}
	return resp, nil
}

func (s *ServiceImpl) UpdateBracket(ctx context.Context, id string, req tax.UpdateBracketRequest) (tax.BracketResponse, error) {
	b, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tax.BracketResponse{}, tax.ErrBracketNotFound
		}
		return tax.BracketResponse{}, fmt.Errorf("failed to get bracket: %w", err)
	}

	if req.MinValue != nil {
		b.MinValue = *req.MinValue
	}
	if req.MaxValue != nil {
		b.MaxValue = req.MaxValue
	}
	if req.Rate != nil {
		b.Rate = *req.Rate
	}
	if req.Deduction != nil {
		b.Deduction = *req.Deduction
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	updated, err := s.taxRepo.Update(ctx, b)
	if err != nil {
		return tax.BracketResponse{}, fmt.Errorf("failed to update bracket: %w", err)
	}
	return toResponse(updated), nil
}

func (s *ServiceImpl) DeleteBracket(ctx context.Context, id string) error {
	if _, err := s.taxRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tax.ErrBracketNotFound
		}
		return fmt.Errorf("failed to get bracket: %w", err)
	}
	if err := s.taxRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bracket: %w", err)
	}
	return nil
}
