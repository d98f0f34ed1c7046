// Package tax computes Brazilian payroll withholdings from versioned
// bracket tables. All functions here are pure: they take the brackets
// and the policy as inputs and never touch storage.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
)

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.RequireFromString("0.01")
)

// INSS walks the progressive brackets in ascending order, taxing each
// slice of the base at the bracket rate, and caps the result at the
// policy cap rate over the full base. The second return reports whether
// the bracket table was empty for the period.
func INSS(base decimal.Decimal, brackets []tax.Bracket, policy tax.Policy) (decimal.Decimal, bool) {
	if len(brackets) == 0 {
		return decimal.Zero, true
	}
	if base.Sign() <= 0 {
		return decimal.Zero, false
	}

	total := decimal.Zero
	remaining := base
	for _, b := range brackets {
		if remaining.Sign() <= 0 {
			break
		}
		slice := remaining
		if b.MaxValue != nil {
			width := b.MaxValue.Sub(b.MinValue).Add(cent)
			if width.LessThan(slice) {
				slice = width
			}
		}
		due := slice.Mul(b.Rate).Div(hundred).Sub(b.Deduction)
		if due.Sign() > 0 {
			total = total.Add(due)
		}
		remaining = remaining.Sub(slice)
	}

	cap := base.Mul(policy.INSSCapRate)
	if total.GreaterThan(cap) {
		total = cap
	}
	return total.Round(2), false
}

// IRRF applies the single bracket matching the taxable base after the
// per-dependent deduction. A base that falls below every bracket owes
// nothing; an empty table is reported via the second return.
func IRRF(base decimal.Decimal, dependents int, brackets []tax.Bracket, policy tax.Policy) (decimal.Decimal, bool) {
	if len(brackets) == 0 {
		return decimal.Zero, true
	}

	taxable := base.Sub(policy.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents))))
	if taxable.Sign() <= 0 {
		return decimal.Zero, false
	}

	for _, b := range brackets {
		if taxable.LessThan(b.MinValue) {
			continue
		}
		if b.MaxValue != nil && taxable.GreaterThan(*b.MaxValue) {
			continue
		}
		due := taxable.Mul(b.Rate).Div(hundred).Sub(b.Deduction)
		if due.Sign() < 0 {
			due = decimal.Zero
		}
		return due.Round(2), false
	}
	return decimal.Zero, false
}

// FGTS is the employer deposit over gross earnings. It is informational
// on the payslip and never enters the deduction total.
func FGTS(base decimal.Decimal, policy tax.Policy) decimal.Decimal {
	if base.Sign() <= 0 {
		return decimal.Zero
	}
	return base.Mul(policy.FGTSRate).Round(2)
}

// Withhold computes the full withholding set for one taxable base.
func Withhold(base decimal.Decimal, dependents int, inssBrackets, irrfBrackets []tax.Bracket, policy tax.Policy) tax.Withholding {
	inss, inssMissing := INSS(base, inssBrackets, policy)
	irrf, irrfMissing := IRRF(base, dependents, irrfBrackets, policy)
	return tax.Withholding{
		INSS:             inss,
		IRRF:             irrf,
		FGTS:             FGTS(base, policy),
		INSSTableMissing: inssMissing,
		IRRFTableMissing: irrfMissing,
	}
}
