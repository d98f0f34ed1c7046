package tax

import (
	"github.com/shopspring/decimal"

	"github.com/viniciussvasques/innexar-hr/internal/pkg/validator"
)

type CreateBracketRequest struct {
	Type      string           `json:"type"`
	Year      int              `json:"year"`
	Month     *int             `json:"month,omitempty"`
	MinValue  decimal.Decimal  `json:"min_value"`
	MaxValue  *decimal.Decimal `json:"max_value,omitempty"`
	Rate      decimal.Decimal  `json:"rate"`
	Deduction decimal.Decimal  `json:"deduction"`
}

func (r *CreateBracketRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeINSS) && r.Type != string(TypeIRRF) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be inss or irrf"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "out of range"})
	}
	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be 1-12"})
	}
	if r.MinValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_value", Message: "must be non-negative"})
	}
	if r.MaxValue != nil && r.MaxValue.LessThan(r.MinValue) {
		errs = append(errs, validator.ValidationError{Field: "max_value", Message: "must be >= min_value"})
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBracketRequest struct {
	MinValue  *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue  *decimal.Decimal `json:"max_value,omitempty"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
	Deduction *decimal.Decimal `json:"deduction,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

type BracketResponse struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Year      int              `json:"year"`
	Month     *int             `json:"month,omitempty"`
	MinValue  decimal.Decimal  `json:"min_value"`
	MaxValue  *decimal.Decimal `json:"max_value,omitempty"`
	Rate      decimal.Decimal  `json:"rate"`
	Deduction decimal.Decimal  `json:"deduction"`
	IsActive  bool             `json:"is_active"`
}
