package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/pkg/validator"
)

type SavePayrollRequest struct {
	EmployeeID      string           `json:"employee_id"`
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	Commissions     *decimal.Decimal `json:"commissions,omitempty"`
	Bonuses         *decimal.Decimal `json:"bonuses,omitempty"`
	BenefitsValue   *decimal.Decimal `json:"benefits_value,omitempty"`
	Transportation  *decimal.Decimal `json:"transportation,omitempty"`
	MealVoucher     *decimal.Decimal `json:"meal_voucher,omitempty"`
	Loans           *decimal.Decimal `json:"loans,omitempty"`
	Advances        *decimal.Decimal `json:"advances,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
}

func (r *SavePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "out of range"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be 1-12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessPeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *ProcessPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "out of range"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be 1-12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	Commissions     decimal.Decimal `json:"commissions"`
	Overtime        decimal.Decimal `json:"overtime"`
	Bonuses         decimal.Decimal `json:"bonuses"`
	BenefitsValue   decimal.Decimal `json:"benefits_value"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	INSS            decimal.Decimal `json:"inss"`
	IRRF            decimal.Decimal `json:"irrf"`
	FGTS            decimal.Decimal `json:"fgts"`
	Transportation  decimal.Decimal `json:"transportation"`
	MealVoucher     decimal.Decimal `json:"meal_voucher"`
	Loans           decimal.Decimal `json:"loans"`
	Advances        decimal.Decimal `json:"advances"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	IsProcessed     bool            `json:"is_processed"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
}

type ProcessPeriodResponse struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}
