package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type ServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
	historyRepo  employee.HistoryRepository
}

func NewService(
	db *database.DB,
	employeeRepo employee.Repository,
	historyRepo employee.HistoryRepository,
) employee.Service {
	return &ServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		historyRepo:  historyRepo,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                emp.ID,
		EmployeeNumber:    emp.EmployeeNumber,
		FullName:          emp.FullName,
		JobTitle:          emp.JobTitle,
		DepartmentID:      emp.DepartmentID,
		DepartmentName:    emp.DepartmentName,
		SupervisorID:      emp.SupervisorID,
		Status:            string(emp.Status),
		ContractType:      string(emp.ContractType),
		BaseSalary:        emp.BaseSalary,
		CommissionPercent: emp.CommissionPercent,
		WeeklyHours:       emp.WeeklyHours,
	}
	if emp.HireDate != nil {
		d := emp.HireDate.Format("2006-01-02")
		resp.HireDate = &d
	}
	if emp.TerminationDate != nil {
		d := emp.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &d
	}
	return resp
}

// DiffHistory compares two employee snapshots and emits one audit row
// per changed dimension, all effective today. A job title change alone
// is a position change; paired with a raise it is a promotion.
func DiffHistory(old, updated employee.Employee, today time.Time) []employee.History {
	var rows []employee.History

	titleChanged := old.JobTitle != updated.JobTitle
	salaryChanged := !old.BaseSalary.Equal(updated.BaseSalary)

	if titleChanged {
		changeType := employee.ChangePosition
		if salaryChanged && updated.BaseSalary.GreaterThan(old.BaseSalary) {
			changeType = employee.ChangePromotion
		}
		rows = append(rows, employee.History{
			EmployeeID:    updated.ID,
			ChangeType:    changeType,
			OldJobTitle:   old.JobTitle,
			NewJobTitle:   updated.JobTitle,
			EffectiveDate: today,
		})
	}

	if salaryChanged {
		oldSalary := old.BaseSalary
		newSalary := updated.BaseSalary
		rows = append(rows, employee.History{
			EmployeeID:    updated.ID,
			ChangeType:    employee.ChangeSalary,
			OldSalary:     &oldSalary,
			NewSalary:     &newSalary,
			EffectiveDate: today,
		})
	}

	if !strPtrEqual(old.DepartmentID, updated.DepartmentID) {
		rows = append(rows, employee.History{
			EmployeeID:      updated.ID,
			ChangeType:      employee.ChangeDepartment,
			OldDepartmentID: old.DepartmentID,
			NewDepartmentID: updated.DepartmentID,
			EffectiveDate:   today,
		})
	}

	if old.Status != updated.Status {
		rows = append(rows, employee.History{
			EmployeeID:    updated.ID,
			ChangeType:    employee.ChangeStatus,
			Notes:         fmt.Sprintf("%s -> %s", old.Status, updated.Status),
			EffectiveDate: today,
		})
	}

	return rows
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByNumber(ctx, req.EmployeeNumber); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNumberExists
	} else if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee number: %w", err)
	}

	emp := employee.Employee{
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		JobTitle:       req.JobTitle,
		DepartmentID:   req.DepartmentID,
		SupervisorID:   req.SupervisorID,
		Status:         employee.StatusActive,
		ContractType:   employee.ContractType(req.ContractType),
		BaseSalary:     req.BaseSalary,
	}
	if req.CommissionPercent != nil {
		emp.CommissionPercent = *req.CommissionPercent
	}
	if req.WeeklyHours != nil {
		emp.WeeklyHours = *req.WeeklyHours
	}
	if req.HireDate != nil {
		hire, _ := time.Parse("2006-01-02", *req.HireDate)
		emp.HireDate = &hire
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	// Seed the career history with the opening position.
	effective := time.Now().UTC()
	if created.HireDate != nil {
		effective = *created.HireDate
	}
	_, _ = s.historyRepo.Create(ctx, employee.History{
		EmployeeID:    created.ID,
		ChangeType:    employee.ChangePosition,
		NewJobTitle:   created.JobTitle,
		Notes:         "Cargo inicial",
		EffectiveDate: effective,
	})

	return toResponse(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return toResponse(emp), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	rows, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(rows)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, emp := range rows {
		resp.Data = append(resp.Data, toResponse(emp))
	}
	return resp, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	old, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	updated := old
	if req.FullName != nil {
		updated.FullName = *req.FullName
	}
	if req.JobTitle != nil {
		updated.JobTitle = *req.JobTitle
	}
	if req.DepartmentID != nil {
		updated.DepartmentID = req.DepartmentID
	}
	if req.SupervisorID != nil {
		updated.SupervisorID = req.SupervisorID
	}
	if req.Status != nil {
		updated.Status = employee.Status(*req.Status)
	}
	if req.TerminationDate != nil {
		term, _ := time.Parse("2006-01-02", *req.TerminationDate)
		updated.TerminationDate = &term
	}
	if req.BaseSalary != nil {
		updated.BaseSalary = *req.BaseSalary
	}
	if req.CommissionPercent != nil {
		updated.CommissionPercent = *req.CommissionPercent
	}
	if req.WeeklyHours != nil {
		updated.WeeklyHours = *req.WeeklyHours
	}

	saved, err := s.employeeRepo.Update(ctx, updated)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	for _, h := range DiffHistory(old, saved, time.Now().UTC()) {
		_, _ = s.historyRepo.Create(ctx, h)
	}

	return toResponse(saved), nil
}

func (s *ServiceImpl) History(ctx context.Context, employeeID string) ([]employee.HistoryResponse, error) {
	rows, err := s.historyRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	resp := make([]employee.HistoryResponse, 0, len(rows))
	for _, h := range rows {
		resp = append(resp, employee.HistoryResponse{
			ID:            h.ID,
			ChangeType:    string(h.ChangeType),
			OldJobTitle:   h.OldJobTitle,
			NewJobTitle:   h.NewJobTitle,
			OldSalary:     h.OldSalary,
			NewSalary:     h.NewSalary,
			Notes:         h.Notes,
			EffectiveDate: h.EffectiveDate.Format("2006-01-02"),
			CreatedAt:     h.CreatedAt,
		})
	}
	return resp, nil
}

func (s *ServiceImpl) AddDependent(ctx context.Context, employeeID string, dep employee.Dependent) (employee.Dependent, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Dependent{}, employee.ErrEmployeeNotFound
		}
		return employee.Dependent{}, fmt.Errorf("failed to get employee: %w", err)
	}
	dep.EmployeeID = employeeID
	created, err := s.employeeRepo.CreateDependent(ctx, dep)
	if err != nil {
		return employee.Dependent{}, fmt.Errorf("failed to create dependent: %w", err)
	}
	return created, nil
}

func (s *ServiceImpl) ListDependents(ctx context.Context, employeeID string) ([]employee.Dependent, error) {
	deps, err := s.employeeRepo.ListDependents(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependents: %w", err)
	}
	return deps, nil
}

func (s *ServiceImpl) AddDocument(ctx context.Context, employeeID string, doc employee.Document) (employee.Document, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Document{}, employee.ErrEmployeeNotFound
		}
		return employee.Document{}, fmt.Errorf("failed to get employee: %w", err)
	}
	doc.EmployeeID = employeeID
	doc.IsActive = true
	created, err := s.employeeRepo.CreateDocument(ctx, doc)
	if err != nil {
		return employee.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

func (s *ServiceImpl) ListDocuments(ctx context.Context, employeeID string) ([]employee.Document, error) {
	docs, err := s.employeeRepo.ListDocuments(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
