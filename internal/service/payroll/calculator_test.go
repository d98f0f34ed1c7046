package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/viniciussvasques/innexar-hr/internal/domain/payroll"
	taxdomain "github.com/viniciussvasques/innexar-hr/internal/domain/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func brackets2024() (inss, irrf []taxdomain.Bracket) {
	inss = []taxdomain.Bracket{
		{Type: taxdomain.TypeINSS, MinValue: dec("0"), MaxValue: decPtr("1412.00"), Rate: dec("7.5"), Deduction: dec("0")},
		{Type: taxdomain.TypeINSS, MinValue: dec("1412.01"), MaxValue: decPtr("2666.68"), Rate: dec("9"), Deduction: dec("0")},
		{Type: taxdomain.TypeINSS, MinValue: dec("2666.69"), MaxValue: decPtr("4000.03"), Rate: dec("12"), Deduction: dec("0")},
		{Type: taxdomain.TypeINSS, MinValue: dec("4000.04"), MaxValue: decPtr("7786.02"), Rate: dec("14"), Deduction: dec("0")},
	}
	irrf = []taxdomain.Bracket{
		{Type: taxdomain.TypeIRRF, MinValue: dec("0"), MaxValue: decPtr("2259.20"), Rate: dec("0"), Deduction: dec("0")},
		{Type: taxdomain.TypeIRRF, MinValue: dec("2259.21"), MaxValue: decPtr("2826.65"), Rate: dec("7.5"), Deduction: dec("169.44")},
		{Type: taxdomain.TypeIRRF, MinValue: dec("2826.66"), MaxValue: decPtr("3751.05"), Rate: dec("15"), Deduction: dec("381.44")},
		{Type: taxdomain.TypeIRRF, MinValue: dec("3751.06"), MaxValue: decPtr("4664.68"), Rate: dec("22.5"), Deduction: dec("662.77")},
		{Type: taxdomain.TypeIRRF, MinValue: dec("4664.69"), MaxValue: nil, Rate: dec("27.5"), Deduction: dec("896.00")},
	}
	return inss, irrf
}

func TestTotals(t *testing.T) {
	t.Run("earnings minus deductions", func(t *testing.T) {
		p := Totals(payroll.Payroll{
			BaseSalary:     dec("6500"),
			Transportation: dec("600"),
			MealVoucher:    dec("500"),
		})
		assert.True(t, p.TotalEarnings.Equal(dec("6500.00")), "earnings %s", p.TotalEarnings)
		assert.True(t, p.TotalDeductions.Equal(dec("1100.00")), "deductions %s", p.TotalDeductions)
		assert.True(t, p.NetSalary.Equal(dec("5400.00")), "net %s", p.NetSalary)
	})

	t.Run("fgts never deducted", func(t *testing.T) {
		p := Totals(payroll.Payroll{
			BaseSalary: dec("3000"),
			FGTS:       dec("240"),
		})
		assert.True(t, p.TotalDeductions.IsZero())
		assert.True(t, p.NetSalary.Equal(dec("3000.00")))
	})

	t.Run("net invariant holds", func(t *testing.T) {
		p := Totals(payroll.Payroll{
			BaseSalary:      dec("4123.45"),
			Commissions:     dec("321.99"),
			Bonuses:         dec("88.10"),
			INSS:            dec("402.31"),
			IRRF:            dec("150.00"),
			OtherDeductions: dec("13.37"),
		})
		assert.True(t, p.NetSalary.Equal(p.TotalEarnings.Sub(p.TotalDeductions)))
	})
}

func TestAutoCalculate(t *testing.T) {
	inss, irrf := brackets2024()
	policy := taxdomain.DefaultPolicy(2024)

	in := Inputs{
		EmployeeBaseSalary: dec("4400"),
		WeeklyHours:        dec("44"),
		MonthlyHours:       dec("200"),
		Dependents:         1,
		INSSBrackets:       inss,
		IRRFBrackets:       irrf,
	}

	p := payroll.Payroll{
		Commissions: dec("500"),
		Bonuses:     dec("100"),
		MealVoucher: dec("300"),
	}

	first := AutoCalculate(p, in, policy)

	t.Run("derived fields populated", func(t *testing.T) {
		assert.True(t, first.BaseSalary.Equal(dec("4400.00")))
		assert.True(t, first.Overtime.GreaterThan(decimal.Zero))
		assert.True(t, first.INSS.GreaterThan(decimal.Zero))
		assert.True(t, first.FGTS.GreaterThan(decimal.Zero))
		assert.True(t, first.NetSalary.Equal(first.TotalEarnings.Sub(first.TotalDeductions)))
	})

	t.Run("inputs pass through", func(t *testing.T) {
		assert.True(t, first.Commissions.Equal(dec("500")))
		assert.True(t, first.Bonuses.Equal(dec("100")))
		assert.True(t, first.MealVoucher.Equal(dec("300")))
	})

	t.Run("idempotent over its own output", func(t *testing.T) {
		second := AutoCalculate(first, in, policy)
		assert.True(t, second.INSS.Equal(first.INSS))
		assert.True(t, second.IRRF.Equal(first.IRRF))
		assert.True(t, second.Overtime.Equal(first.Overtime))
		assert.True(t, second.TotalEarnings.Equal(first.TotalEarnings))
		assert.True(t, second.NetSalary.Equal(first.NetSalary))
	})

	t.Run("missing tables zero the taxes", func(t *testing.T) {
		got := AutoCalculate(p, Inputs{
			EmployeeBaseSalary: dec("4400"),
			WeeklyHours:        dec("44"),
		}, policy)
		assert.True(t, got.INSS.IsZero())
		assert.True(t, got.IRRF.IsZero())
	})
}
