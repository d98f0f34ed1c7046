package notification

import "time"

// Type represents the kind of HR notification
type Type string

const (
	TypeVacationExpiring   Type = "vacation_expiring"
	TypeVacationBalanceLow Type = "vacation_balance_low"
	TypeDocumentExpiring   Type = "document_expiring"
	TypeTimeRecordPending  Type = "time_record_pending"
	TypeVacationRequest    Type = "vacation_request"
	TypePayrollProcessed   Type = "payroll_processed"
	TypeOther              Type = "other"
)

// Notification is append-only: once created, only IsRead/ReadAt ever change.
type Notification struct {
	ID         string
	EmployeeID *string // nil means it addresses everyone
	Type       Type
	Title      string
	Message    string
	ActionURL  string
	IsRead     bool
	ReadAt     *time.Time
	CreatedAt  time.Time
}

// SweepResult reports how many notifications each sweep created in one run.
type SweepResult struct {
	Documents   int `json:"documents"`
	Vacations   int `json:"vacations"`
	TimeRecords int `json:"time_records"`
}
