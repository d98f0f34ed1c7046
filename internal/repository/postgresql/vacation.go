package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

// NewVacationRepository creates a new vacation repository
func NewVacationRepository(db *database.DB) vacation.Repository {
	return &vacationRepository{db: db}
}

const vacationColumns = `
	v.id, v.employee_id, v.status, v.start_date, v.end_date, v.days,
	v.acquisition_period_start, v.acquisition_period_end, v.sell_days,
	v.cash_allowance, v.approved_by, v.approved_at, v.notes,
	v.rejection_reason, v.requested_at, v.updated_at,
	e.full_name AS employee_name`

func scanVacation(row interface{ Scan(dest ...any) error }) (vacation.Vacation, error) {
	var v vacation.Vacation
	err := row.Scan(
		&v.ID, &v.EmployeeID, &v.Status, &v.StartDate, &v.EndDate, &v.Days,
		&v.AcquisitionPeriodStart, &v.AcquisitionPeriodEnd, &v.SellDays,
		&v.CashAllowance, &v.ApprovedBy, &v.ApprovedAt, &v.Notes,
		&v.RejectionReason, &v.RequestedAt, &v.UpdatedAt,
		&v.EmployeeName,
	)
	return v, err
}

func (r *vacationRepository) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	v.RequestedAt = now
	v.UpdatedAt = now

	query := `
		INSERT INTO vacations (
			id, employee_id, status, start_date, end_date, days,
			acquisition_period_start, acquisition_period_end, sell_days,
			cash_allowance, notes, requested_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := q.Exec(ctx, query,
		v.ID, v.EmployeeID, string(v.Status), v.StartDate, v.EndDate, v.Days,
		v.AcquisitionPeriodStart, v.AcquisitionPeriodEnd, v.SellDays,
		v.CashAllowance, v.Notes, v.RequestedAt, v.UpdatedAt,
	)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}
	return v, nil
}

func (r *vacationRepository) GetByID(ctx context.Context, id string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + `
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.id = $1`
	return scanVacation(q.QueryRow(ctx, query, id))
}

func (r *vacationRepository) List(ctx context.Context, filter vacation.Filter) ([]vacation.Vacation, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argNum := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("v.employee_id = $%d", argNum))
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("v.status = $%d", argNum))
		args = append(args, string(*filter.Status))
		argNum++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM vacations v WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vacations: %w", err)
	}

	query := `SELECT ` + vacationColumns + `
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id
		WHERE ` + where + ` ORDER BY v.start_date DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}
	return vacations, total, rows.Err()
}

func (r *vacationRepository) Update(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	v.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE vacations SET
			status = $2, start_date = $3, end_date = $4, days = $5,
			approved_by = $6, approved_at = $7, notes = $8,
			rejection_reason = $9, updated_at = $10
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		v.ID, string(v.Status), v.StartDate, v.EndDate, v.Days,
		v.ApprovedBy, v.ApprovedAt, v.Notes, v.RejectionReason, v.UpdatedAt,
	)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to update vacation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.Vacation{}, vacation.ErrVacationNotFound
	}
	return v, nil
}

func (r *vacationRepository) ListCountedAsTaken(ctx context.Context, employeeID string, asOf time.Time) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + `
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.employee_id = $1
		  AND v.status IN ('approved', 'taken')
		  AND v.acquisition_period_start <= $2
		ORDER BY v.acquisition_period_start`

	rows, err := q.Query(ctx, query, employeeID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list taken vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}
