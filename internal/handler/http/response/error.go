package response

import (
	"errors"
	"net/http"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/domain/payroll"
	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/domain/user"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, employee.ErrNoHireDate):
		BadRequest(w, "Employee has no hire date", nil)

	// Time records
	case errors.Is(err, timerecord.ErrTimeRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrAlreadyApproved):
		Conflict(w, "Time record already approved")
	case errors.Is(err, timerecord.ErrInvalidRecordType):
		BadRequest(w, "Invalid record type", nil)

	// Vacations
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation not found")
	case errors.Is(err, vacation.ErrInvalidTransition):
		Conflict(w, "Invalid status transition")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, vacation.ErrInsufficientDays):
		BadRequest(w, "Insufficient vacation balance", nil)

	// Payrolls
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid period", nil)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Tax tables
	case errors.Is(err, tax.ErrBracketNotFound):
		NotFound(w, "Tax bracket not found")
	case errors.Is(err, tax.ErrBracketOverlap):
		Conflict(w, "Tax bracket overlaps an existing one")
	case errors.Is(err, tax.ErrInvalidTaxType):
		BadRequest(w, "Invalid tax type", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
