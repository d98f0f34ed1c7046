package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.employee_number, e.full_name, e.job_title,
	e.department_id, e.supervisor_id, e.status, e.contract_type,
	e.hire_date, e.termination_date, e.base_salary, e.commission_percent,
	e.weekly_hours, e.created_at, e.updated_at,
	d.name AS department_name, s.full_name AS supervisor_name`

const employeeJoins = `
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN employees s ON s.id = e.supervisor_id`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeNumber, &e.FullName, &e.JobTitle,
		&e.DepartmentID, &e.SupervisorID, &e.Status, &e.ContractType,
		&e.HireDate, &e.TerminationDate, &e.BaseSalary, &e.CommissionPercent,
		&e.WeeklyHours, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.SupervisorName,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (
			id, user_id, employee_number, full_name, job_title, department_id,
			supervisor_id, status, contract_type, hire_date, termination_date,
			base_salary, commission_percent, weekly_hours, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := q.Exec(ctx, query,
		emp.ID, emp.UserID, emp.EmployeeNumber, emp.FullName, emp.JobTitle,
		emp.DepartmentID, emp.SupervisorID, string(emp.Status), string(emp.ContractType),
		emp.HireDate, emp.TerminationDate, emp.BaseSalary, emp.CommissionPercent,
		emp.WeeklyHours, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "employees_employee_number_key") {
			return employee.Employee{}, employee.ErrEmployeeNumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e` + employeeJoins + ` WHERE e.id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByNumber(ctx context.Context, number string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e` + employeeJoins + ` WHERE e.employee_number = $1`
	return scanEmployee(q.QueryRow(ctx, query, number))
}

func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argNum := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argNum))
		args = append(args, string(*filter.Status))
		argNum++
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argNum))
		args = append(args, *filter.DepartmentID)
		argNum++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_number ILIKE $%d)", argNum, argNum))
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `SELECT ` + employeeColumns + ` FROM employees e` + employeeJoins +
		` WHERE ` + where + ` ORDER BY e.full_name`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE employees SET
			full_name = $2, job_title = $3, department_id = $4, supervisor_id = $5,
			status = $6, contract_type = $7, hire_date = $8, termination_date = $9,
			base_salary = $10, commission_percent = $11, weekly_hours = $12,
			updated_at = $13
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.JobTitle, emp.DepartmentID, emp.SupervisorID,
		string(emp.Status), string(emp.ContractType), emp.HireDate, emp.TerminationDate,
		emp.BaseSalary, emp.CommissionPercent, emp.WeeklyHours, emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return emp, nil
}

func (r *employeeRepository) ListActiveWithHireDate(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e` + employeeJoins +
		` WHERE e.status = 'active' AND e.hire_date IS NOT NULL ORDER BY e.full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) CountTaxDependents(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM dependents WHERE employee_id = $1 AND is_tax_dependent = TRUE`
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dependents: %w", err)
	}
	return count, nil
}

func (r *employeeRepository) CreateDependent(ctx context.Context, dep employee.Dependent) (employee.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	if dep.ID == "" {
		dep.ID = uuid.New().String()
	}
	dep.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO dependents (id, employee_id, name, birth_date, is_tax_dependent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.Exec(ctx, query, dep.ID, dep.EmployeeID, dep.Name, dep.BirthDate, dep.IsTaxDependent, dep.CreatedAt)
	if err != nil {
		return employee.Dependent{}, fmt.Errorf("failed to create dependent: %w", err)
	}
	return dep, nil
}

func (r *employeeRepository) ListDependents(ctx context.Context, employeeID string) ([]employee.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, birth_date, is_tax_dependent, created_at
		FROM dependents WHERE employee_id = $1 ORDER BY name
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependents: %w", err)
	}
	defer rows.Close()

	var deps []employee.Dependent
	for rows.Next() {
		var d employee.Dependent
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Name, &d.BirthDate, &d.IsTaxDependent, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dependent: %w", err)
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

func (r *employeeRepository) CreateDocument(ctx context.Context, doc employee.Document) (employee.Document, error) {
	q := GetQuerier(ctx, r.db)

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO employee_documents (id, employee_id, type, name, expiry_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query, doc.ID, doc.EmployeeID, string(doc.Type), doc.Name, doc.ExpiryDate, doc.IsActive, doc.CreatedAt)
	if err != nil {
		return employee.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

func (r *employeeRepository) ListDocuments(ctx context.Context, employeeID string) ([]employee.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, name, expiry_date, is_active, created_at
		FROM employee_documents WHERE employee_id = $1 ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []employee.Document
	for rows.Next() {
		var d employee.Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Type, &d.Name, &d.ExpiryDate, &d.IsActive, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *employeeRepository) ListDocumentsExpiringBetween(ctx context.Context, from, to time.Time) ([]employee.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.employee_id, d.type, d.name, d.expiry_date, d.is_active, d.created_at,
		       e.full_name
		FROM employee_documents d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.is_active = TRUE AND d.expiry_date BETWEEN $1 AND $2
		ORDER BY d.expiry_date
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring documents: %w", err)
	}
	defer rows.Close()

	var docs []employee.Document
	for rows.Next() {
		var d employee.Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Type, &d.Name, &d.ExpiryDate, &d.IsActive, &d.CreatedAt, &d.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
