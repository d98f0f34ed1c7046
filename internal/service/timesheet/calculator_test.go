package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
)

func punch(recType timerecord.RecordType, hour, minute int) timerecord.TimeRecord {
	ts := time.Date(2024, 3, 11, hour, minute, 0, 0, time.UTC)
	return timerecord.TimeRecord{
		Type:      recType,
		Date:      time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		PunchedAt: ts,
	}
}

func TestWorkedHoursForDay(t *testing.T) {
	tests := []struct {
		name    string
		records []timerecord.TimeRecord
		want    string
	}{
		{
			name: "full day with lunch",
			records: []timerecord.TimeRecord{
				punch(timerecord.TypeCheckIn, 8, 0),
				punch(timerecord.TypeLunchIn, 12, 0),
				punch(timerecord.TypeLunchOut, 13, 0),
				punch(timerecord.TypeCheckOut, 18, 0),
			},
			want: "9",
		},
		{
			name: "duplicate punches pick widest window",
			records: []timerecord.TimeRecord{
				punch(timerecord.TypeCheckIn, 9, 0),
				punch(timerecord.TypeCheckIn, 8, 0),
				punch(timerecord.TypeCheckOut, 17, 0),
				punch(timerecord.TypeCheckOut, 18, 0),
			},
			want: "10",
		},
		{
			name: "overtime window adds on top",
			records: []timerecord.TimeRecord{
				punch(timerecord.TypeCheckIn, 8, 0),
				punch(timerecord.TypeCheckOut, 17, 0),
				punch(timerecord.TypeOvertimeIn, 19, 0),
				punch(timerecord.TypeOvertimeOut, 21, 30),
			},
			want: "11.5",
		},
		{
			name: "missing check-out yields zero",
			records: []timerecord.TimeRecord{
				punch(timerecord.TypeCheckIn, 8, 0),
			},
			want: "0",
		},
		{
			name: "inverted punches clamp to zero",
			records: []timerecord.TimeRecord{
				punch(timerecord.TypeCheckIn, 18, 0),
				punch(timerecord.TypeCheckOut, 8, 0),
			},
			want: "0",
		},
		{
			name: "lunch without return is ignored",
			records: []timerecord.TimeRecord{
				punch(timerecord.TypeCheckIn, 8, 0),
				punch(timerecord.TypeLunchIn, 12, 0),
				punch(timerecord.TypeCheckOut, 17, 0),
			},
			want: "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkedHoursForDay(tt.records)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestOvertimeValue(t *testing.T) {
	policy := tax.DefaultPolicy(2024)

	t.Run("statutory example", func(t *testing.T) {
		// 44h/week, R$4400 base, 200h worked: expected 191.312h,
		// 8.688 extra hours at 1.5x the derived hourly rate.
		got := OvertimeValue(
			decimal.NewFromInt(200),
			decimal.NewFromInt(4400),
			decimal.RequireFromString("44"),
			policy,
		)
		assert.True(t, got.Equal(decimal.RequireFromString("299.72")), "got %s", got)
	})

	t.Run("no overtime below expectation", func(t *testing.T) {
		got := OvertimeValue(
			decimal.NewFromInt(160),
			decimal.NewFromInt(4400),
			decimal.RequireFromString("44"),
			policy,
		)
		assert.True(t, got.IsZero())
	})

	t.Run("zero weekly hours falls back to default", func(t *testing.T) {
		withDefault := OvertimeValue(decimal.NewFromInt(200), decimal.NewFromInt(4400), decimal.Zero, policy)
		explicit := OvertimeValue(decimal.NewFromInt(200), decimal.NewFromInt(4400), policy.DefaultWeeklyHours, policy)
		assert.True(t, withDefault.Equal(explicit))
	})
}

func TestSummarize(t *testing.T) {
	policy := tax.DefaultPolicy(2024)
	records := []timerecord.TimeRecord{
		punch(timerecord.TypeCheckIn, 8, 0),
		punch(timerecord.TypeCheckOut, 17, 0),
	}
	other := punch(timerecord.TypeCheckIn, 8, 0)
	other.Date = time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	otherOut := punch(timerecord.TypeCheckOut, 16, 0)
	otherOut.Date = other.Date
	records = append(records, other, otherOut)

	got := Summarize(records, decimal.RequireFromString("44"), policy)
	assert.Equal(t, 2, got.DaysWorked)
	assert.True(t, got.WorkedHours.Equal(decimal.NewFromInt(17)), "got %s", got.WorkedHours)
	assert.True(t, got.OvertimeHours.IsZero())
}
