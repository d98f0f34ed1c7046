package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

// NewTimeRecordRepository creates a new time record repository
func NewTimeRecordRepository(db *database.DB) timerecord.Repository {
	return &timeRecordRepository{db: db}
}

const timeRecordColumns = `
	t.id, t.employee_id, t.type, t.date, t.punched_at, t.is_approved,
	t.approved_by, t.approved_at, t.justification, t.created_at,
	e.full_name AS employee_name`

func scanTimeRecord(row interface{ Scan(dest ...any) error }) (timerecord.TimeRecord, error) {
	var t timerecord.TimeRecord
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Type, &t.Date, &t.PunchedAt, &t.IsApproved,
		&t.ApprovedBy, &t.ApprovedAt, &t.Justification, &t.CreatedAt,
		&t.EmployeeName,
	)
	return t, err
}

func (r *timeRecordRepository) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO time_records (id, employee_id, type, date, punched_at, is_approved, justification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.Exec(ctx, query,
		record.ID, record.EmployeeID, string(record.Type), record.Date,
		record.PunchedAt, record.IsApproved, record.Justification, record.CreatedAt,
	)
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}
	return record, nil
}

func (r *timeRecordRepository) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeRecordColumns + `
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1`
	return scanTimeRecord(q.QueryRow(ctx, query, id))
}

func (r *timeRecordRepository) List(ctx context.Context, filter timerecord.Filter) ([]timerecord.TimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argNum := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argNum))
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", argNum))
		args = append(args, *filter.From)
		argNum++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", argNum))
		args = append(args, *filter.To)
		argNum++
	}
	if filter.Approved != nil {
		conditions = append(conditions, fmt.Sprintf("t.is_approved = $%d", argNum))
		args = append(args, *filter.Approved)
		argNum++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_records t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time records: %w", err)
	}

	query := `SELECT ` + timeRecordColumns + `
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE ` + where + ` ORDER BY t.punched_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		t, err := scanTimeRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, t)
	}
	return records, total, rows.Err()
}

func (r *timeRecordRepository) Approve(ctx context.Context, id, approvedBy string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	now := time.Now().UTC()
	query := `
		UPDATE time_records
		SET is_approved = TRUE, approved_by = $2, approved_at = $3
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, approvedBy, now)
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to approve time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.TimeRecord{}, timerecord.ErrTimeRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *timeRecordRepository) ListApprovedForMonth(ctx context.Context, employeeID string, year int, month int) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeRecordColumns + `
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1 AND t.is_approved = TRUE
		  AND EXTRACT(YEAR FROM t.date) = $2 AND EXTRACT(MONTH FROM t.date) = $3
		ORDER BY t.date, t.punched_at`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		t, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, t)
	}
	return records, rows.Err()
}

func (r *timeRecordRepository) PendingBySupervisor(ctx context.Context, since time.Time) ([]timerecord.PendingSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.supervisor_id, COUNT(*)
		FROM time_records t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.is_approved = FALSE AND t.created_at >= $1 AND e.supervisor_id IS NOT NULL
		GROUP BY e.supervisor_id
	`
	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending punches: %w", err)
	}
	defer rows.Close()

	var summaries []timerecord.PendingSummary
	for rows.Next() {
		var s timerecord.PendingSummary
		if err := rows.Scan(&s.SupervisorID, &s.PendingCount); err != nil {
			return nil, fmt.Errorf("failed to scan pending summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
