package vacation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeID    string `json:"employee_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	SellDays      int    `json:"sell_days"`
	CashAllowance bool   `json:"cash_allowance"`
	Notes         string `json:"notes,omitempty"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.SellDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "sell_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func (r *TransitionRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{
		string(StatusApproved), string(StatusRejected), string(StatusTaken), string(StatusCancelled),
	}) {
		return validator.ValidationErrors{{Field: "status", Message: "unknown status"}}
	}
	return nil
}

type VacationResponse struct {
	ID                     string     `json:"id"`
	EmployeeID             string     `json:"employee_id"`
	EmployeeName           string     `json:"employee_name,omitempty"`
	StartDate              string     `json:"start_date"`
	EndDate                string     `json:"end_date"`
	Days                   int        `json:"days"`
	Status                 string     `json:"status"`
	AcquisitionPeriodStart *string    `json:"acquisition_period_start,omitempty"`
	AcquisitionPeriodEnd   *string    `json:"acquisition_period_end,omitempty"`
	SellDays               int        `json:"sell_days"`
	CashAllowance          bool       `json:"cash_allowance"`
	Notes                  string     `json:"notes,omitempty"`
	ApprovedBy             *string    `json:"approved_by,omitempty"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

type BalanceResponse struct {
	EmployeeID     string              `json:"employee_id"`
	EarnedDays     int                 `json:"earned_days"`
	TakenDays      int                 `json:"taken_days"`
	BalanceDays    int                 `json:"balance_days"`
	NextExpiry     *string             `json:"next_expiry,omitempty"`
	Periods        []AcquisitionPeriod `json:"periods"`
}

type ProportionalResponse struct {
	EmployeeID string          `json:"employee_id"`
	Months     int             `json:"months"`
	Days       decimal.Decimal `json:"days"`
	Value      decimal.Decimal `json:"value"`
}
