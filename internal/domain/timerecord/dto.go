package timerecord

import (
	"time"

	"github.com/viniciussvasques/innexar-hr/internal/pkg/validator"
)

type PunchRequest struct {
	EmployeeID    string `json:"employee_id"`
	Type          string `json:"type"`
	PunchedAt     string `json:"punched_at"`
	Justification string `json:"justification,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !ValidRecordType(RecordType(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown record type"})
	}
	if _, err := time.Parse(time.RFC3339, r.PunchedAt); err != nil {
		errs = append(errs, validator.ValidationError{Field: "punched_at", Message: "must be RFC3339"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeRecordResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	Type          string     `json:"type"`
	Date          string     `json:"date"`
	PunchedAt     time.Time  `json:"punched_at"`
	IsApproved    bool       `json:"is_approved"`
	ApprovedBy    *string    `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	Justification string     `json:"justification,omitempty"`
}

type MonthlySummaryResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	WorkedHours   string `json:"worked_hours"`
	ExpectedHours string `json:"expected_hours"`
	OvertimeHours string `json:"overtime_hours"`
	DaysWorked    int    `json:"days_worked"`
}
