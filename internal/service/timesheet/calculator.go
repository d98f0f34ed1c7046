// Package timesheet turns raw clock punches into worked hours and
// overtime pay. Pairing per day is deterministic: the earliest check-in
// against the latest check-out, minus the lunch window, plus any
// explicit overtime window. Malformed days clamp to zero instead of
// producing negative hours.
package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
)

type DaySummary struct {
	Date        time.Time
	WorkedHours decimal.Decimal
}

type MonthSummary struct {
	WorkedHours   decimal.Decimal
	ExpectedHours decimal.Decimal
	OvertimeHours decimal.Decimal
	DaysWorked    int
}

func minutesBetween(from, to time.Time) decimal.Decimal {
	d := to.Sub(from)
	if d < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(d.Minutes())
}

// WorkedHoursForDay pairs one day's punches. Records must all belong to
// the same calendar date; order does not matter.
func WorkedHoursForDay(records []timerecord.TimeRecord) decimal.Decimal {
	var checkIn, checkOut, lunchIn, lunchOut, otIn, otOut *time.Time

	for i := range records {
		ts := records[i].PunchedAt
		switch records[i].Type {
		case timerecord.TypeCheckIn:
			if checkIn == nil || ts.Before(*checkIn) {
				checkIn = &ts
			}
		case timerecord.TypeCheckOut:
			if checkOut == nil || ts.After(*checkOut) {
				checkOut = &ts
			}
		case timerecord.TypeLunchIn:
			if lunchIn == nil || ts.Before(*lunchIn) {
				lunchIn = &ts
			}
		case timerecord.TypeLunchOut:
			if lunchOut == nil || ts.After(*lunchOut) {
				lunchOut = &ts
			}
		case timerecord.TypeOvertimeIn:
			if otIn == nil || ts.Before(*otIn) {
				otIn = &ts
			}
		case timerecord.TypeOvertimeOut:
			if otOut == nil || ts.After(*otOut) {
				otOut = &ts
			}
		}
	}

	minutes := decimal.Zero
	if checkIn != nil && checkOut != nil {
		minutes = minutesBetween(*checkIn, *checkOut)
		if lunchIn != nil && lunchOut != nil {
			minutes = minutes.Sub(minutesBetween(*lunchIn, *lunchOut))
		}
	}
	if otIn != nil && otOut != nil {
		minutes = minutes.Add(minutesBetween(*otIn, *otOut))
	}
	if minutes.Sign() < 0 {
		minutes = decimal.Zero
	}
	return minutes.Div(decimal.NewFromInt(60))
}

// Summarize groups a month's approved punches by date and totals them
// against the contractual expectation.
func Summarize(records []timerecord.TimeRecord, weeklyHours decimal.Decimal, policy tax.Policy) MonthSummary {
	byDate := make(map[string][]timerecord.TimeRecord)
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], r)
	}

	worked := decimal.Zero
	days := 0
	for _, dayRecords := range byDate {
		h := WorkedHoursForDay(dayRecords)
		if h.Sign() > 0 {
			days++
		}
		worked = worked.Add(h)
	}

	expected := ExpectedMonthlyHours(weeklyHours, policy)
	overtime := worked.Sub(expected)
	if overtime.Sign() < 0 {
		overtime = decimal.Zero
	}
	return MonthSummary{
		WorkedHours:   worked.Round(2),
		ExpectedHours: expected.Round(2),
		OvertimeHours: overtime.Round(2),
		DaysWorked:    days,
	}
}

// ExpectedMonthlyHours converts the contractual weekly load to a
// monthly figure, falling back to the statutory default when unset.
func ExpectedMonthlyHours(weeklyHours decimal.Decimal, policy tax.Policy) decimal.Decimal {
	if weeklyHours.Sign() <= 0 {
		weeklyHours = policy.DefaultWeeklyHours
	}
	return weeklyHours.Mul(policy.WeeksPerMonth)
}

// OvertimeValue prices hours above the monthly expectation at the
// statutory multiplier over the derived hourly rate.
func OvertimeValue(monthlyHours, baseSalary, weeklyHours decimal.Decimal, policy tax.Policy) decimal.Decimal {
	expected := ExpectedMonthlyHours(weeklyHours, policy)
	if expected.Sign() <= 0 {
		return decimal.Zero
	}
	extra := monthlyHours.Sub(expected)
	if extra.Sign() <= 0 {
		return decimal.Zero
	}
	hourly := baseSalary.Div(expected)
	return extra.Mul(hourly).Mul(policy.OvertimeMultiplier).Round(2)
}
