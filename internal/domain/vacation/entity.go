package vacation

import "time"

type Status string

const (
	StatusRequested Status = "requested"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusTaken     Status = "taken"
	StatusCancelled Status = "cancelled"
)

// CanTransitionTo encodes the request state machine:
// requested -> approved | rejected | cancelled
// approved  -> taken | cancelled
// taken, rejected and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusRequested:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusTaken || next == StatusCancelled
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusTaken || s == StatusRejected || s == StatusCancelled
}

// Vacation is a request spanning [StartDate, EndDate]. Days is always derived
// from the dates (inclusive of both ends); caller-supplied values are ignored.
type Vacation struct {
	ID                     string
	EmployeeID             string
	Status                 Status
	StartDate              time.Time
	EndDate                time.Time
	Days                   int
	AcquisitionPeriodStart time.Time
	AcquisitionPeriodEnd   time.Time
	SellDays               int
	CashAllowance          bool
	ApprovedBy             *string
	ApprovedAt             *time.Time
	Notes                  string
	RejectionReason        string
	RequestedAt            time.Time
	UpdatedAt              time.Time

	// Joined fields
	EmployeeName *string
}

// DayCount returns the inclusive day span of the request.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// AcquisitionPeriod is one 365-day accrual window. The 30-day entitlement it
// grants expires 365 days after the window ends.
type AcquisitionPeriod struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Expiry time.Time `json:"expiry"`
}
