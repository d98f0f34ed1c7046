package user

import "github.com/viniciussvasques/innexar-hr/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID         string  `json:"id"`
		Email      string  `json:"email"`
		FullName   string  `json:"full_name"`
		IsAdmin    bool    `json:"is_admin"`
		EmployeeID *string `json:"employee_id,omitempty"`
	} `json:"user"`
}
