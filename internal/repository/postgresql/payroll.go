package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/payroll"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.payroll_number, p.employee_id, p.month, p.year,
	p.base_salary, p.commissions, p.overtime, p.bonuses, p.benefits_value,
	p.total_earnings, p.inss, p.irrf, p.fgts, p.transportation,
	p.meal_voucher, p.loans, p.advances, p.other_deductions,
	p.total_deductions, p.net_salary, p.is_processed, p.processed_at,
	p.created_at, p.updated_at`

const payrollJoinedColumns = payrollColumns + `,
	e.full_name AS employee_name, e.employee_number`

func scanPayroll(row interface{ Scan(dest ...any) error }, joined bool) (payroll.Payroll, error) {
	var p payroll.Payroll
	dest := []any{
		&p.ID, &p.PayrollNumber, &p.EmployeeID, &p.Month, &p.Year,
		&p.BaseSalary, &p.Commissions, &p.Overtime, &p.Bonuses, &p.BenefitsValue,
		&p.TotalEarnings, &p.INSS, &p.IRRF, &p.FGTS, &p.Transportation,
		&p.MealVoucher, &p.Loans, &p.Advances, &p.OtherDeductions,
		&p.TotalDeductions, &p.NetSalary, &p.IsProcessed, &p.ProcessedAt,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if joined {
		dest = append(dest, &p.EmployeeName, &p.EmployeeNumber)
	}
	return p, row.Scan(dest...)
}

func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO payrolls (
			id, payroll_number, employee_id, month, year,
			base_salary, commissions, overtime, bonuses, benefits_value,
			total_earnings, inss, irrf, fgts, transportation,
			meal_voucher, loans, advances, other_deductions,
			total_deductions, net_salary, is_processed, processed_at,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`
	_, err := q.Exec(ctx, query,
		p.ID, p.PayrollNumber, p.EmployeeID, p.Month, p.Year,
		p.BaseSalary, p.Commissions, p.Overtime, p.Bonuses, p.BenefitsValue,
		p.TotalEarnings, p.INSS, p.IRRF, p.FGTS, p.Transportation,
		p.MealVoucher, p.Loans, p.Advances, p.OtherDeductions,
		p.TotalDeductions, p.NetSalary, p.IsProcessed, p.ProcessedAt,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "payrolls_employee_period_key") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}
	return p, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollJoinedColumns + `
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1`
	return scanPayroll(q.QueryRow(ctx, query, id), true)
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollJoinedColumns + `
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`
	return scanPayroll(q.QueryRow(ctx, query, employeeID, month, year), true)
}

// GetByEmployeePeriodForUpdate locks the period row. FOR UPDATE OF p keeps
// the lock off the joined employees row.
func (r *payrollRepository) GetByEmployeePeriodForUpdate(ctx context.Context, employeeID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payrolls p
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
		FOR UPDATE OF p`
	return scanPayroll(q.QueryRow(ctx, query, employeeID, month, year), false)
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argNum := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argNum))
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argNum))
		args = append(args, *filter.Month)
		argNum++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", argNum))
		args = append(args, *filter.Year)
		argNum++
	}
	if filter.Processed != nil {
		conditions = append(conditions, fmt.Sprintf("p.is_processed = $%d", argNum))
		args = append(args, *filter.Processed)
		argNum++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payrolls p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	query := `SELECT ` + payrollJoinedColumns + `
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + where + ` ORDER BY p.year DESC, p.month DESC, e.full_name`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, total, rows.Err()
}

func (r *payrollRepository) Update(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE payrolls SET
			base_salary = $2, commissions = $3, overtime = $4, bonuses = $5,
			benefits_value = $6, total_earnings = $7, inss = $8, irrf = $9,
			fgts = $10, transportation = $11, meal_voucher = $12, loans = $13,
			advances = $14, other_deductions = $15, total_deductions = $16,
			net_salary = $17, is_processed = $18, processed_at = $19,
			updated_at = $20
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		p.ID, p.BaseSalary, p.Commissions, p.Overtime, p.Bonuses,
		p.BenefitsValue, p.TotalEarnings, p.INSS, p.IRRF,
		p.FGTS, p.Transportation, p.MealVoucher, p.Loans,
		p.Advances, p.OtherDeductions, p.TotalDeductions,
		p.NetSalary, p.IsProcessed, p.ProcessedAt, p.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}
