package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type taxTableRepository struct {
	db *database.DB
}

// NewTaxTableRepository creates a new tax table repository
func NewTaxTableRepository(db *database.DB) tax.Repository {
	return &taxTableRepository{db: db}
}

const bracketColumns = `
	id, type, year, month, min_value, max_value, rate, deduction,
	is_active, created_at, updated_at`

func scanBracket(row interface{ Scan(dest ...any) error }) (tax.Bracket, error) {
	var b tax.Bracket
	err := row.Scan(
		&b.ID, &b.Type, &b.Year, &b.Month, &b.MinValue, &b.MaxValue,
		&b.Rate, &b.Deduction, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *taxTableRepository) Create(ctx context.Context, bracket tax.Bracket) (tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	if bracket.ID == "" {
		bracket.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	bracket.CreatedAt = now
	bracket.UpdatedAt = now

	query := `
		INSERT INTO tax_brackets (id, type, year, month, min_value, max_value, rate, deduction, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		bracket.ID, string(bracket.Type), bracket.Year, bracket.Month,
		bracket.MinValue, bracket.MaxValue, bracket.Rate, bracket.Deduction,
		bracket.IsActive, bracket.CreatedAt, bracket.UpdatedAt,
	)
	if err != nil {
		return tax.Bracket{}, fmt.Errorf("failed to create bracket: %w", err)
	}
	return bracket, nil
}

func (r *taxTableRepository) GetByID(ctx context.Context, id string) (tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bracketColumns + ` FROM tax_brackets WHERE id = $1`
	return scanBracket(q.QueryRow(ctx, query, id))
}

func (r *taxTableRepository) ListActive(ctx context.Context, taxType tax.Type, year int) ([]tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bracketColumns + `
		FROM tax_brackets
		WHERE type = $1 AND year = $2 AND is_active = TRUE
		ORDER BY min_value ASC`

	rows, err := q.Query(ctx, query, string(taxType), year)
	if err != nil {
		return nil, fmt.Errorf("failed to list brackets: %w", err)
	}
	defer rows.Close()

	var brackets []tax.Bracket
	for rows.Next() {
		b, err := scanBracket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	return brackets, rows.Err()
}

func (r *taxTableRepository) List(ctx context.Context, taxType *tax.Type, year *int) ([]tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argNum := 1

	if taxType != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argNum))
		args = append(args, string(*taxType))
		argNum++
	}
	if year != nil {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argNum))
		args = append(args, *year)
		argNum++
	}

	query := `SELECT ` + bracketColumns + ` FROM tax_brackets WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY type, year DESC, min_value ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list brackets: %w", err)
	}
	defer rows.Close()

	var brackets []tax.Bracket
	for rows.Next() {
		b, err := scanBracket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	return brackets, rows.Err()
}

func (r *taxTableRepository) Update(ctx context.Context, bracket tax.Bracket) (tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	bracket.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tax_brackets SET
			min_value = $2, max_value = $3, rate = $4, deduction = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		bracket.ID, bracket.MinValue, bracket.MaxValue, bracket.Rate,
		bracket.Deduction, bracket.IsActive, bracket.UpdatedAt,
	)
	if err != nil {
		return tax.Bracket{}, fmt.Errorf("failed to update bracket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tax.Bracket{}, tax.ErrBracketNotFound
	}
	return bracket, nil
}

func (r *taxTableRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tax_brackets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bracket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tax.ErrBracketNotFound
	}
	return nil
}
