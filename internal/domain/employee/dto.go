package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber    string           `json:"employee_number"`
	FullName          string           `json:"full_name"`
	JobTitle          string           `json:"job_title"`
	DepartmentID      *string          `json:"department_id,omitempty"`
	SupervisorID      *string          `json:"supervisor_id,omitempty"`
	ContractType      string           `json:"contract_type"`
	HireDate          *string          `json:"hire_date,omitempty"`
	BaseSalary        decimal.Decimal  `json:"base_salary"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	WeeklyHours       *decimal.Decimal `json:"weekly_hours,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeNumber(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "must match EMPnnn"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.WeeklyHours != nil && r.WeeklyHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName          *string          `json:"full_name,omitempty"`
	JobTitle          *string          `json:"job_title,omitempty"`
	DepartmentID      *string          `json:"department_id,omitempty"`
	SupervisorID      *string          `json:"supervisor_id,omitempty"`
	Status            *string          `json:"status,omitempty"`
	TerminationDate   *string          `json:"termination_date,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	WeeklyHours       *decimal.Decimal `json:"weekly_hours,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusOnLeave), string(StatusTerminated), string(StatusResigned),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.TerminationDate != nil {
		if _, ok := validator.IsValidDate(*r.TerminationDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "termination_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	EmployeeNumber    string          `json:"employee_number"`
	FullName          string          `json:"full_name"`
	JobTitle          string          `json:"job_title"`
	DepartmentID      *string         `json:"department_id,omitempty"`
	DepartmentName    *string         `json:"department_name,omitempty"`
	SupervisorID      *string         `json:"supervisor_id,omitempty"`
	Status            string          `json:"status"`
	ContractType      string          `json:"contract_type"`
	HireDate          *string         `json:"hire_date,omitempty"`
	TerminationDate   *string         `json:"termination_date,omitempty"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	WeeklyHours       decimal.Decimal `json:"weekly_hours"`
}

type HistoryResponse struct {
	ID            string           `json:"id"`
	ChangeType    string           `json:"change_type"`
	OldJobTitle   string           `json:"old_job_title,omitempty"`
	NewJobTitle   string           `json:"new_job_title,omitempty"`
	OldSalary     *decimal.Decimal `json:"old_salary,omitempty"`
	NewSalary     *decimal.Decimal `json:"new_salary,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	EffectiveDate string           `json:"effective_date"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
