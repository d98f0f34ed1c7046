package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	UserID            *string
	EmployeeNumber    string
	FullName          string
	JobTitle          string
	DepartmentID      *string
	SupervisorID      *string
	Status            Status
	ContractType      ContractType
	HireDate          *time.Time
	TerminationDate   *time.Time
	BaseSalary        decimal.Decimal
	CommissionPercent decimal.Decimal
	// Contracted weekly hours. Zero or unset falls back to the 44h
	// Brazilian standard when used as an overtime denominator.
	WeeklyHours decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	DepartmentName *string
	SupervisorName *string
}

type Status string

const (
	StatusActive     Status = "active"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
	StatusResigned   Status = "resigned"
)

type ContractType string

const (
	ContractCLT       ContractType = "clt"
	ContractPJ        ContractType = "pj"
	ContractIntern    ContractType = "intern"
	ContractTemporary ContractType = "temporary"
)

// Dependent of an employee. Only tax dependents count toward the IRRF
// per-dependent deduction.
type Dependent struct {
	ID             string
	EmployeeID     string
	Name           string
	BirthDate      *time.Time
	IsTaxDependent bool
	CreatedAt      time.Time
}

type DocumentType string

const (
	DocumentWorkPermit  DocumentType = "work_permit"
	DocumentIDCard      DocumentType = "id_card"
	DocumentDiploma     DocumentType = "diploma"
	DocumentCertificate DocumentType = "certificate"
	DocumentContract    DocumentType = "contract"
	DocumentOther       DocumentType = "other"
)

type Document struct {
	ID         string
	EmployeeID string
	Type       DocumentType
	Name       string
	ExpiryDate *time.Time
	IsActive   bool
	CreatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// ChangeType classifies an audit history row.
type ChangeType string

const (
	ChangePosition   ChangeType = "position"
	ChangePromotion  ChangeType = "promotion"
	ChangeSalary     ChangeType = "salary"
	ChangeDepartment ChangeType = "department"
	// ChangeTransfer is the legacy kind older rows used for status changes.
	// New status changes are recorded as ChangeStatus.
	ChangeTransfer ChangeType = "transfer"
	ChangeStatus   ChangeType = "status_change"
)

// History is an append-only audit row recording one changed dimension of an
// employee. Multiple dimensions changing in one update produce multiple rows.
type History struct {
	ID              string
	EmployeeID      string
	ChangeType      ChangeType
	OldJobTitle     string
	NewJobTitle     string
	OldDepartmentID *string
	NewDepartmentID *string
	OldSalary       *decimal.Decimal
	NewSalary       *decimal.Decimal
	Notes           string
	EffectiveDate   time.Time
	CreatedAt       time.Time
}
