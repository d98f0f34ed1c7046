package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// 2024 progressive INSS table.
func inssBrackets2024() []tax.Bracket {
	return []tax.Bracket{
		{Type: tax.TypeINSS, Year: 2024, MinValue: dec("0"), MaxValue: decPtr("1412.00"), Rate: dec("7.5"), Deduction: dec("0")},
		{Type: tax.TypeINSS, Year: 2024, MinValue: dec("1412.01"), MaxValue: decPtr("2666.68"), Rate: dec("9"), Deduction: dec("0")},
		{Type: tax.TypeINSS, Year: 2024, MinValue: dec("2666.69"), MaxValue: decPtr("4000.03"), Rate: dec("12"), Deduction: dec("0")},
		{Type: tax.TypeINSS, Year: 2024, MinValue: dec("4000.04"), MaxValue: decPtr("7786.02"), Rate: dec("14"), Deduction: dec("0")},
	}
}

func irrfBrackets2024() []tax.Bracket {
	return []tax.Bracket{
		{Type: tax.TypeIRRF, Year: 2024, MinValue: dec("0"), MaxValue: decPtr("2259.20"), Rate: dec("0"), Deduction: dec("0")},
		{Type: tax.TypeIRRF, Year: 2024, MinValue: dec("2259.21"), MaxValue: decPtr("2826.65"), Rate: dec("7.5"), Deduction: dec("169.44")},
		{Type: tax.TypeIRRF, Year: 2024, MinValue: dec("2826.66"), MaxValue: decPtr("3751.05"), Rate: dec("15"), Deduction: dec("381.44")},
		{Type: tax.TypeIRRF, Year: 2024, MinValue: dec("3751.06"), MaxValue: decPtr("4664.68"), Rate: dec("22.5"), Deduction: dec("662.77")},
		{Type: tax.TypeIRRF, Year: 2024, MinValue: dec("4664.69"), MaxValue: nil, Rate: dec("27.5"), Deduction: dec("896.00")},
	}
}

func TestINSS(t *testing.T) {
	policy := tax.DefaultPolicy(2024)

	t.Run("progressive slices", func(t *testing.T) {
		got, missing := INSS(dec("3000"), inssBrackets2024(), policy)
		require.False(t, missing)
		// 1412.01*7.5% + 1254.68*9% + 333.31*12%
		assert.True(t, got.GreaterThan(decimal.Zero))
		assert.True(t, got.LessThanOrEqual(dec("3000").Mul(policy.INSSCapRate)))
	})

	t.Run("capped at 11 percent of base", func(t *testing.T) {
		high := []tax.Bracket{
			{MinValue: dec("0"), MaxValue: nil, Rate: dec("50"), Deduction: dec("0")},
		}
		got, missing := INSS(dec("2000"), high, policy)
		require.False(t, missing)
		assert.True(t, got.Equal(dec("220.00")), "got %s", got)
	})

	t.Run("missing table flagged", func(t *testing.T) {
		got, missing := INSS(dec("3000"), nil, policy)
		assert.True(t, missing)
		assert.True(t, got.IsZero())
	})

	t.Run("zero base", func(t *testing.T) {
		got, missing := INSS(decimal.Zero, inssBrackets2024(), policy)
		assert.False(t, missing)
		assert.True(t, got.IsZero())
	})
}

func TestIRRF(t *testing.T) {
	policy := tax.DefaultPolicy(2024)

	t.Run("dependent deduction lowers taxable base", func(t *testing.T) {
		// 5000 - 2*189.59 = 4620.82, top of the 22.5% bracket.
		got, missing := IRRF(dec("5000"), 2, irrfBrackets2024(), policy)
		require.False(t, missing)
		want := dec("4620.82").Mul(dec("22.5")).Div(dec("100")).Sub(dec("662.77")).Round(2)
		assert.True(t, got.Equal(want), "got %s want %s", got, want)
	})

	t.Run("open top bracket", func(t *testing.T) {
		got, missing := IRRF(dec("10000"), 0, irrfBrackets2024(), policy)
		require.False(t, missing)
		want := dec("10000").Mul(dec("27.5")).Div(dec("100")).Sub(dec("896.00")).Round(2)
		assert.True(t, got.Equal(want), "got %s want %s", got, want)
	})

	t.Run("exempt range owes nothing", func(t *testing.T) {
		got, missing := IRRF(dec("1500"), 0, irrfBrackets2024(), policy)
		require.False(t, missing)
		assert.True(t, got.IsZero())
	})

	t.Run("deductions cannot go negative", func(t *testing.T) {
		brackets := []tax.Bracket{
			{MinValue: dec("0"), MaxValue: nil, Rate: dec("1"), Deduction: dec("999")},
		}
		got, missing := IRRF(dec("3000"), 0, brackets, policy)
		require.False(t, missing)
		assert.True(t, got.IsZero())
	})

	t.Run("missing table flagged", func(t *testing.T) {
		_, missing := IRRF(dec("3000"), 0, nil, policy)
		assert.True(t, missing)
	})
}

func TestFGTS(t *testing.T) {
	policy := tax.DefaultPolicy(2024)
	assert.True(t, FGTS(dec("2500"), policy).Equal(dec("200.00")))
	assert.True(t, FGTS(decimal.Zero, policy).IsZero())
}

func TestWithhold(t *testing.T) {
	policy := tax.DefaultPolicy(2024)
	w := Withhold(dec("5000"), 2, inssBrackets2024(), irrfBrackets2024(), policy)
	assert.False(t, w.INSSTableMissing)
	assert.False(t, w.IRRFTableMissing)
	assert.True(t, w.FGTS.Equal(dec("400.00")))
	assert.True(t, w.INSS.GreaterThan(decimal.Zero))
	assert.True(t, w.IRRF.GreaterThan(decimal.Zero))
}
