// Package payroll builds monthly payslips. The calculation itself is
// pure and idempotent: AutoCalculate over its own output changes
// nothing, which is what makes recalculation safe.
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/domain/payroll"
	taxdomain "github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	taxcalc "github.com/viniciussvasques/innexar-hr/internal/service/tax"
	"github.com/viniciussvasques/innexar-hr/internal/service/timesheet"
)

// Inputs is everything AutoCalculate needs besides the sheet itself.
type Inputs struct {
	EmployeeBaseSalary decimal.Decimal
	WeeklyHours        decimal.Decimal
	MonthlyHours       decimal.Decimal
	Dependents         int
	INSSBrackets       []taxdomain.Bracket
	IRRFBrackets       []taxdomain.Bracket
}

// AutoCalculate returns a copy of the sheet with base salary, overtime,
// taxes and totals recomputed from source data. Caller-supplied inputs
// (commissions, bonuses, benefits, manual deductions) pass through
// untouched.
func AutoCalculate(p payroll.Payroll, in Inputs, policy taxdomain.Policy) payroll.Payroll {
	p.BaseSalary = in.EmployeeBaseSalary.Round(2)
	p.Overtime = timesheet.OvertimeValue(in.MonthlyHours, in.EmployeeBaseSalary, in.WeeklyHours, policy)

	taxable := p.BaseSalary.Add(p.Commissions).Add(p.Overtime).Add(p.Bonuses)
	w := taxcalc.Withhold(taxable, in.Dependents, in.INSSBrackets, in.IRRFBrackets, policy)
	p.INSS = w.INSS
	p.IRRF = w.IRRF
	p.FGTS = w.FGTS

	return Totals(p)
}

// Totals recomputes the three derived sums. FGTS stays out of the
// deduction total: the employer deposits it, the employee never pays it.
func Totals(p payroll.Payroll) payroll.Payroll {
	p.TotalEarnings = p.BaseSalary.
		Add(p.Commissions).
		Add(p.Overtime).
		Add(p.Bonuses).
		Add(p.BenefitsValue).
		Round(2)
	p.TotalDeductions = p.INSS.
		Add(p.IRRF).
		Add(p.Transportation).
		Add(p.MealVoucher).
		Add(p.Loans).
		Add(p.Advances).
		Add(p.OtherDeductions).
		Round(2)
	p.NetSalary = p.TotalEarnings.Sub(p.TotalDeductions).Round(2)
	return p
}
