package vacation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestEarnedDays(t *testing.T) {
	policy := tax.DefaultPolicy(2024)

	t.Run("second window open after 400 days", func(t *testing.T) {
		hire := date(2023, 1, 1)
		asOf := hire.AddDate(0, 0, 400)
		assert.Equal(t, 60, EarnedDays(hire, asOf, policy))
	})

	t.Run("first window counts from day one", func(t *testing.T) {
		hire := date(2024, 1, 1)
		asOf := hire.AddDate(0, 0, 200)
		assert.Equal(t, 30, EarnedDays(hire, asOf, policy))
	})

	t.Run("three windows after 800 days", func(t *testing.T) {
		hire := date(2021, 6, 1)
		asOf := hire.AddDate(0, 0, 800)
		assert.Equal(t, 90, EarnedDays(hire, asOf, policy))
	})

	t.Run("nothing before the hire date", func(t *testing.T) {
		hire := date(2025, 1, 1)
		assert.Equal(t, 0, EarnedDays(hire, date(2024, 6, 1), policy))
	})
}

func TestNextExpiry(t *testing.T) {
	hire := date(2023, 1, 1)
	asOf := hire.AddDate(0, 0, 400)

	expiry := NextExpiry(hire, asOf)
	require.NotNil(t, expiry)
	// First period closed 365 days after hire; entitlement lapses 365
	// days after that.
	assert.Equal(t, hire.AddDate(0, 0, 730), *expiry)

	// Inside the first period the soonest lapse is that period's own.
	expiry = NextExpiry(date(2024, 1, 1), date(2024, 6, 1))
	require.NotNil(t, expiry)
	assert.Equal(t, date(2024, 1, 1).AddDate(0, 0, 730), *expiry)

	assert.Nil(t, NextExpiry(date(2025, 1, 1), date(2024, 6, 1)))
}

func TestBalance(t *testing.T) {
	assert.Equal(t, 20, Balance(30, 10))
	assert.Equal(t, 0, Balance(30, 30))
	// Overdrawn history clamps instead of going negative.
	assert.Equal(t, 0, Balance(30, 45))
}

func TestProportional(t *testing.T) {
	policy := tax.DefaultPolicy(2024)

	t.Run("18 months accrue 45 days", func(t *testing.T) {
		months, days, value := Proportional(date(2023, 1, 15), date(2024, 7, 15), decimal.NewFromInt(3000), policy)
		assert.Equal(t, 18, months)
		assert.True(t, days.Equal(decimal.NewFromInt(45)), "days %s", days)
		assert.True(t, value.Equal(decimal.RequireFromString("4500.00")), "value %s", value)
	})

	t.Run("same month accrues nothing", func(t *testing.T) {
		months, days, value := Proportional(date(2024, 3, 1), date(2024, 3, 20), decimal.NewFromInt(3000), policy)
		assert.Equal(t, 0, months)
		assert.True(t, days.IsZero())
		assert.True(t, value.IsZero())
	})
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 1, vacation.DayCount(date(2024, 3, 1), date(2024, 3, 1)))
	assert.Equal(t, 10, vacation.DayCount(date(2024, 3, 1), date(2024, 3, 10)))
	assert.Equal(t, 30, vacation.DayCount(date(2024, 3, 1), date(2024, 3, 30)))
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from vacation.Status
		to   vacation.Status
		ok   bool
	}{
		{vacation.StatusRequested, vacation.StatusApproved, true},
		{vacation.StatusRequested, vacation.StatusRejected, true},
		{vacation.StatusRequested, vacation.StatusCancelled, true},
		{vacation.StatusRequested, vacation.StatusTaken, false},
		{vacation.StatusApproved, vacation.StatusTaken, true},
		{vacation.StatusApproved, vacation.StatusCancelled, true},
		{vacation.StatusApproved, vacation.StatusRejected, false},
		{vacation.StatusTaken, vacation.StatusCancelled, false},
		{vacation.StatusRejected, vacation.StatusApproved, false},
		{vacation.StatusCancelled, vacation.StatusRequested, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
