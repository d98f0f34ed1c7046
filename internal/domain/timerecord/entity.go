package timerecord

import "time"

// RecordType is the punch kind. A day's worked hours derive from an approved
// check_in/check_out pair, optionally minus an approved lunch interval.
type RecordType string

const (
	TypeCheckIn     RecordType = "check_in"
	TypeCheckOut    RecordType = "check_out"
	TypeLunchIn     RecordType = "lunch_in"
	TypeLunchOut    RecordType = "lunch_out"
	TypeOvertimeIn  RecordType = "overtime_in"
	TypeOvertimeOut RecordType = "overtime_out"
)

func ValidRecordType(t RecordType) bool {
	switch t {
	case TypeCheckIn, TypeCheckOut, TypeLunchIn, TypeLunchOut, TypeOvertimeIn, TypeOvertimeOut:
		return true
	}
	return false
}

// TimeRecord is a single punch event for an employee.
type TimeRecord struct {
	ID            string
	EmployeeID    string
	Type          RecordType
	Date          time.Time
	PunchedAt     time.Time
	IsApproved    bool
	ApprovedBy    *string
	ApprovedAt    *time.Time
	Justification string
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
}

// PendingSummary aggregates unapproved punches per supervisor for the
// pending-approval sweep.
type PendingSummary struct {
	SupervisorID string
	PendingCount int
}
