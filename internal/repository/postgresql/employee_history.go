package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type employeeHistoryRepository struct {
	db *database.DB
}

// NewEmployeeHistoryRepository creates a new employee history repository
func NewEmployeeHistoryRepository(db *database.DB) employee.HistoryRepository {
	return &employeeHistoryRepository{db: db}
}

func (r *employeeHistoryRepository) Create(ctx context.Context, h employee.History) (employee.History, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO employee_history (
			id, employee_id, change_type, old_job_title, new_job_title,
			old_department_id, new_department_id, old_salary, new_salary,
			notes, effective_date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := q.Exec(ctx, query,
		h.ID, h.EmployeeID, string(h.ChangeType), h.OldJobTitle, h.NewJobTitle,
		h.OldDepartmentID, h.NewDepartmentID, h.OldSalary, h.NewSalary,
		h.Notes, h.EffectiveDate, h.CreatedAt,
	)
	if err != nil {
		return employee.History{}, fmt.Errorf("failed to create history row: %w", err)
	}
	return h, nil
}

func (r *employeeHistoryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]employee.History, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, change_type, old_job_title, new_job_title,
		       old_department_id, new_department_id, old_salary, new_salary,
		       notes, effective_date, created_at
		FROM employee_history
		WHERE employee_id = $1
		ORDER BY effective_date DESC, created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var history []employee.History
	for rows.Next() {
		var h employee.History
		if err := rows.Scan(
			&h.ID, &h.EmployeeID, &h.ChangeType, &h.OldJobTitle, &h.NewJobTitle,
			&h.OldDepartmentID, &h.NewDepartmentID, &h.OldSalary, &h.NewSalary,
			&h.Notes, &h.EffectiveDate, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
