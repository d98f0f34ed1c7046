package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/domain/payroll"
	taxdomain "github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
	"github.com/viniciussvasques/innexar-hr/internal/repository/postgresql"
	"github.com/viniciussvasques/innexar-hr/internal/service/timesheet"
)

type ServiceImpl struct {
	db               *database.DB
	payrollRepo      payroll.Repository
	employeeRepo     employee.Repository
	taxRepo          taxdomain.Repository
	timeRecordRepo   timerecord.Repository
	notificationRepo notification.Repository
}

func NewService(
	db *database.DB,
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
	taxRepo taxdomain.Repository,
	timeRecordRepo timerecord.Repository,
	notificationRepo notification.Repository,
) payroll.Service {
	return &ServiceImpl{
		db:               db,
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		taxRepo:          taxRepo,
		timeRecordRepo:   timeRecordRepo,
		notificationRepo: notificationRepo,
	}
}

func toResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:              p.ID,
		Number:          p.PayrollNumber,
		EmployeeID:      p.EmployeeID,
		Year:            p.Year,
		Month:           p.Month,
		BaseSalary:      p.BaseSalary,
		Commissions:     p.Commissions,
		Overtime:        p.Overtime,
		Bonuses:         p.Bonuses,
		BenefitsValue:   p.BenefitsValue,
		TotalEarnings:   p.TotalEarnings,
		INSS:            p.INSS,
		IRRF:            p.IRRF,
		FGTS:            p.FGTS,
		Transportation:  p.Transportation,
		MealVoucher:     p.MealVoucher,
		Loans:           p.Loans,
		Advances:        p.Advances,
		OtherDeductions: p.OtherDeductions,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		IsProcessed:     p.IsProcessed,
		ProcessedAt:     p.ProcessedAt,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	return resp
}

func applyInputs(p *payroll.Payroll, req payroll.SavePayrollRequest) {
	if req.Commissions != nil {
		p.Commissions = *req.Commissions
	}
	if req.Bonuses != nil {
		p.Bonuses = *req.Bonuses
	}
	if req.BenefitsValue != nil {
		p.BenefitsValue = *req.BenefitsValue
	}
	if req.Transportation != nil {
		p.Transportation = *req.Transportation
	}
	if req.MealVoucher != nil {
		p.MealVoucher = *req.MealVoucher
	}
	if req.Loans != nil {
		p.Loans = *req.Loans
	}
	if req.Advances != nil {
		p.Advances = *req.Advances
	}
	if req.OtherDeductions != nil {
		p.OtherDeductions = *req.OtherDeductions
	}
}

// inputs gathers everything the automatic calculation needs for one
// employee and period: worked hours from approved punches, tax
// dependents and the year's bracket tables.
func (s *ServiceImpl) inputs(ctx context.Context, emp employee.Employee, year, month int) (Inputs, taxdomain.Policy, error) {
	policy := taxdomain.DefaultPolicy(year)

	records, err := s.timeRecordRepo.ListApprovedForMonth(ctx, emp.ID, year, month)
	if err != nil {
		return Inputs{}, policy, fmt.Errorf("failed to list time records: %w", err)
	}
	summary := timesheet.Summarize(records, emp.WeeklyHours, policy)

	dependents, err := s.employeeRepo.CountTaxDependents(ctx, emp.ID)
	if err != nil {
		return Inputs{}, policy, fmt.Errorf("failed to count dependents: %w", err)
	}

	inssBrackets, err := s.taxRepo.ListActive(ctx, taxdomain.TypeINSS, year)
	if err != nil {
		return Inputs{}, policy, fmt.Errorf("failed to list inss brackets: %w", err)
	}
	irrfBrackets, err := s.taxRepo.ListActive(ctx, taxdomain.TypeIRRF, year)
	if err != nil {
		return Inputs{}, policy, fmt.Errorf("failed to list irrf brackets: %w", err)
	}

	return Inputs{
		EmployeeBaseSalary: emp.BaseSalary,
		WeeklyHours:        emp.WeeklyHours,
		MonthlyHours:       summary.WorkedHours,
		Dependents:         dependents,
		INSSBrackets:       inssBrackets,
		IRRFBrackets:       irrfBrackets,
	}, policy, nil
}

func (s *ServiceImpl) Save(ctx context.Context, req payroll.SavePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.Month, req.Year)
	isNew := false
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, payroll.ErrPayrollNotFound) {
			return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll: %w", err)
		}
		isNew = true
		existing = payroll.Payroll{
			PayrollNumber: payroll.Number(req.Year, req.Month, emp.EmployeeNumber),
			EmployeeID:    req.EmployeeID,
			Month:         req.Month,
			Year:          req.Year,
		}
	}

	applyInputs(&existing, req)

	if existing.IsProcessed {
		// A closed sheet keeps its taxes; only the totals follow the
		// adjusted inputs.
		existing = Totals(existing)
	} else {
		in, policy, err := s.inputs(ctx, emp, req.Year, req.Month)
		if err != nil {
			return payroll.PayrollResponse{}, err
		}
		existing = AutoCalculate(existing, in, policy)
	}

	var saved payroll.Payroll
	if isNew {
		saved, err = s.payrollRepo.Create(ctx, existing)
	} else {
		saved, err = s.payrollRepo.Update(ctx, existing)
	}
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to save payroll: %w", err)
	}
	return toResponse(saved), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll: %w", err)
	}
	return toResponse(p), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollResponse, error) {
	rows, _, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	resp := make([]payroll.PayrollResponse, 0, len(rows))
	for _, p := range rows {
		resp = append(resp, toResponse(p))
	}
	return resp, nil
}

func (s *ServiceImpl) Recalculate(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll: %w", err)
	}
	if p.IsProcessed {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyExists
	}

	emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	in, policy, err := s.inputs(ctx, emp, p.Year, p.Month)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	updated, err := s.payrollRepo.Update(ctx, AutoCalculate(p, in, policy))
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll: %w", err)
	}
	return toResponse(updated), nil
}

func (s *ServiceImpl) ProcessPeriod(ctx context.Context, req payroll.ProcessPeriodRequest) (payroll.ProcessPeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessPeriodResponse{}, err
	}

	employees, _, err := s.employeeRepo.List(ctx, employee.Filter{
		Status: statusPtr(employee.StatusActive),
		Limit:  10000,
	})
	if err != nil {
		return payroll.ProcessPeriodResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var resp payroll.ProcessPeriodResponse
	for _, emp := range employees {
		if err := s.processEmployee(ctx, emp, req.Year, req.Month); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", emp.EmployeeNumber, err))
			continue
		}
		resp.Processed++
	}
	return resp, nil
}

// processEmployee closes one employee's month inside a transaction. The
// row lock on the period serializes concurrent processing runs; the
// second run finds the sheet already processed and leaves it alone.
func (s *ServiceImpl) processEmployee(ctx context.Context, emp employee.Employee, year, month int) error {
	var processed payroll.Payroll

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.payrollRepo.GetByEmployeePeriodForUpdate(txCtx, emp.ID, month, year)
		isNew := false
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, payroll.ErrPayrollNotFound) {
				return fmt.Errorf("failed to lock payroll: %w", err)
			}
			isNew = true
			p = payroll.Payroll{
				PayrollNumber: payroll.Number(year, month, emp.EmployeeNumber),
				EmployeeID:    emp.ID,
				Month:         month,
				Year:          year,
			}
		}
		if p.IsProcessed {
			processed = p
			return nil
		}

		in, policy, err := s.inputs(txCtx, emp, year, month)
		if err != nil {
			return err
		}
		p = AutoCalculate(p, in, policy)

		now := time.Now().UTC()
		p.IsProcessed = true
		p.ProcessedAt = &now

		if isNew {
			processed, err = s.payrollRepo.Create(txCtx, p)
		} else {
			processed, err = s.payrollRepo.Update(txCtx, p)
		}
		if err != nil {
			return fmt.Errorf("failed to save payroll: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyProcessed(ctx, emp, processed)
	return nil
}

// notifyProcessed tells the employee their payslip closed. The period
// tag in the title plus ExistsSince keeps reprocessing from producing
// duplicate notifications.
func (s *ServiceImpl) notifyProcessed(ctx context.Context, emp employee.Employee, p payroll.Payroll) {
	if p.ProcessedAt == nil {
		return
	}
	period := fmt.Sprintf("%02d/%d", p.Month, p.Year)
	exists, err := s.notificationRepo.ExistsSince(ctx, emp.ID, notification.TypePayrollProcessed, period, *p.ProcessedAt)
	if err != nil || exists {
		return
	}
	_, _ = s.notificationRepo.Create(ctx, notification.Notification{
		EmployeeID: &emp.ID,
		Type:       notification.TypePayrollProcessed,
		Title:      "Folha de pagamento " + period + " processada",
		Message: fmt.Sprintf("Sua folha de %s foi processada. Valor líquido: R$ %s",
			period, p.NetSalary.StringFixed(2)),
		ActionURL: "/payrolls/" + p.ID,
	})
}

func statusPtr(s employee.Status) *employee.Status {
	return &s
}
