package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one sheet per (employee, month, year), unique. Earnings and
// deduction fields split into derived values (overtime, inss, irrf, fgts,
// the three totals) and caller-supplied inputs (everything else). Every save
// recomputes the totals; an unprocessed save recomputes the derived taxes and
// overtime from source data too.
type Payroll struct {
	ID            string
	PayrollNumber string
	EmployeeID    string
	Month         int
	Year          int

	// Earnings
	BaseSalary    decimal.Decimal
	Commissions   decimal.Decimal
	Overtime      decimal.Decimal
	Bonuses       decimal.Decimal
	BenefitsValue decimal.Decimal
	TotalEarnings decimal.Decimal

	// Deductions. FGTS is stored here because the employer must deposit it,
	// but it is never part of TotalDeductions: it is not withheld from the
	// employee.
	INSS            decimal.Decimal
	IRRF            decimal.Decimal
	FGTS            decimal.Decimal
	Transportation  decimal.Decimal
	MealVoucher     decimal.Decimal
	Loans           decimal.Decimal
	Advances        decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal

	NetSalary decimal.Decimal

	IsProcessed bool
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
}

// Number builds the canonical payroll number for a period.
func Number(year, month int, employeeNumber string) string {
	return fmt.Sprintf("PAY-%d-%02d-%s", year, month, employeeNumber)
}
