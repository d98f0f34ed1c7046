package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeINSS Type = "inss"
	TypeIRRF Type = "irrf"
)

// Bracket is one row of a progressive tax table: an income range with a rate
// and a flat deduction. Max nil means unbounded.
type Bracket struct {
	ID        string
	Type      Type
	Year      int
	Month     *int
	MinValue  decimal.Decimal
	MaxValue  *decimal.Decimal
	Rate      decimal.Decimal
	Deduction decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy carries the legal constants that change between tax years. Keeping
// them on a versioned struct instead of package literals means historical
// payrolls stay reproducible when a new year's values land.
type Policy struct {
	Year                int
	DependentDeduction  decimal.Decimal // per-dependent IRRF base reduction
	WeeksPerMonth       decimal.Decimal // 365.25 / 12 / 7
	OvertimeMultiplier  decimal.Decimal
	INSSCapRate         decimal.Decimal // legal INSS ceiling as a fraction of gross
	FGTSRate            decimal.Decimal // employer-paid, never an employee deduction
	DefaultWeeklyHours  decimal.Decimal // fallback when the contract carries none
	VacationDaysPerYear int
}

// DefaultPolicy returns the constants in force for the given year.
func DefaultPolicy(year int) Policy {
	return Policy{
		Year:                year,
		DependentDeduction:  decimal.RequireFromString("189.59"),
		WeeksPerMonth:       decimal.RequireFromString("4.348"),
		OvertimeMultiplier:  decimal.RequireFromString("1.5"),
		INSSCapRate:         decimal.RequireFromString("0.11"),
		FGTSRate:            decimal.RequireFromString("0.08"),
		DefaultWeeklyHours:  decimal.RequireFromString("44.00"),
		VacationDaysPerYear: 30,
	}
}

// Withholding is the result of a full tax computation. The Missing flags
// distinguish "legitimately zero" from "no table configured for that year",
// which a bare zero cannot.
type Withholding struct {
	INSS             decimal.Decimal
	IRRF             decimal.Decimal
	FGTS             decimal.Decimal
	INSSTableMissing bool
	IRRFTableMissing bool
}
