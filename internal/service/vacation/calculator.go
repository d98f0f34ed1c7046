// Package vacation implements the Brazilian acquisition-period model:
// each 365-day stretch of employment carries 30 days of leave, counted
// from the day the period opens, and every entitlement lapses 365 days
// after its own period ends.
package vacation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
)

// Periods lists every acquisition window opened between the hire date
// and asOf, completed or not.
func Periods(hireDate, asOf time.Time) []vacation.AcquisitionPeriod {
	var periods []vacation.AcquisitionPeriod
	for start := hireDate; !start.After(asOf); start = start.AddDate(0, 0, 365) {
		end := start.AddDate(0, 0, 365)
		periods = append(periods, vacation.AcquisitionPeriod{
			Start:  start,
			End:    end,
			Expiry: end.AddDate(0, 0, 365),
		})
	}
	return periods
}

// EarnedDays counts 30 days for every acquisition window opened by
// asOf, the in-progress window included.
func EarnedDays(hireDate, asOf time.Time, policy tax.Policy) int {
	return len(Periods(hireDate, asOf)) * policy.VacationDaysPerYear
}

// NextExpiry returns the soonest lapse date still ahead of asOf, or
// nil when no window has opened yet. Periods come back in ascending
// order, so the first future expiry is the soonest.
func NextExpiry(hireDate, asOf time.Time) *time.Time {
	for _, p := range Periods(hireDate, asOf) {
		if p.Expiry.After(asOf) {
			expiry := p.Expiry
			return &expiry
		}
	}
	return nil
}

// Balance nets taken days against the earned total, never below zero.
func Balance(earned, taken int) int {
	balance := earned - taken
	if balance < 0 {
		return 0
	}
	return balance
}

// Proportional values the leave accrued between the hire date and asOf
// at 2.5 days per full month, priced at the daily salary rate.
func Proportional(hireDate, asOf time.Time, baseSalary decimal.Decimal, policy tax.Policy) (months int, days, value decimal.Decimal) {
	months = (asOf.Year()-hireDate.Year())*12 + int(asOf.Month()) - int(hireDate.Month())
	if months < 0 {
		months = 0
	}
	perMonth := decimal.NewFromInt(int64(policy.VacationDaysPerYear)).Div(decimal.NewFromInt(12))
	days = perMonth.Mul(decimal.NewFromInt(int64(months))).Round(0)
	value = baseSalary.Div(decimal.NewFromInt(30)).Mul(days).Round(2)
	return months, days, value
}
