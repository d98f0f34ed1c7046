package vacation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type ServiceImpl struct {
	db               *database.DB
	vacationRepo     vacation.Repository
	employeeRepo     employee.Repository
	notificationRepo notification.Repository
}

func NewService(
	db *database.DB,
	vacationRepo vacation.Repository,
	employeeRepo employee.Repository,
	notificationRepo notification.Repository,
) vacation.Service {
	return &ServiceImpl{
		db:               db,
		vacationRepo:     vacationRepo,
		employeeRepo:     employeeRepo,
		notificationRepo: notificationRepo,
	}
}

func toResponse(v vacation.Vacation) vacation.VacationResponse {
	resp := vacation.VacationResponse{
		ID:            v.ID,
		EmployeeID:    v.EmployeeID,
		StartDate:     v.StartDate.Format("2006-01-02"),
		EndDate:       v.EndDate.Format("2006-01-02"),
		Days:          v.Days,
		Status:        string(v.Status),
		SellDays:      v.SellDays,
		CashAllowance: v.CashAllowance,
		Notes:         v.Notes,
		ApprovedBy:    v.ApprovedBy,
		ApprovedAt:    v.ApprovedAt,
		CreatedAt:     v.RequestedAt,
	}
	if v.EmployeeName != nil {
		resp.EmployeeName = *v.EmployeeName
	}
	if !v.AcquisitionPeriodStart.IsZero() {
		s := v.AcquisitionPeriodStart.Format("2006-01-02")
		resp.AcquisitionPeriodStart = &s
	}
	if !v.AcquisitionPeriodEnd.IsZero() {
		e := v.AcquisitionPeriodEnd.Format("2006-01-02")
		resp.AcquisitionPeriodEnd = &e
	}
	return resp
}

func (s *ServiceImpl) Request(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return vacation.VacationResponse{}, vacation.ErrInvalidDateRange
	}
	days := vacation.DayCount(start, end)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationResponse{}, employee.ErrEmployeeNotFound
		}
		return vacation.VacationResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.HireDate == nil {
		return vacation.VacationResponse{}, employee.ErrNoHireDate
	}

	now := time.Now().UTC()
	balance, err := s.balanceDays(ctx, emp, now)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if days+req.SellDays > balance {
		return vacation.VacationResponse{}, vacation.ErrInsufficientDays
	}

	v := vacation.Vacation{
		EmployeeID:    req.EmployeeID,
		Status:        vacation.StatusRequested,
		StartDate:     start,
		EndDate:       end,
		Days:          days,
		SellDays:      req.SellDays,
		CashAllowance: req.CashAllowance,
		Notes:         req.Notes,
	}
	if expiry := NextExpiry(*emp.HireDate, now); expiry != nil {
		v.AcquisitionPeriodStart = expiry.AddDate(0, 0, -730)
		v.AcquisitionPeriodEnd = expiry.AddDate(0, 0, -365)
	}

	created, err := s.vacationRepo.Create(ctx, v)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to create vacation: %w", err)
	}

	s.notifySupervisor(ctx, emp, created)

	return toResponse(created), nil
}

// notifySupervisor tells the requester's supervisor about a new request.
// Failures are swallowed: the request itself already committed.
func (s *ServiceImpl) notifySupervisor(ctx context.Context, emp employee.Employee, v vacation.Vacation) {
	if emp.SupervisorID == nil {
		return
	}
	_, _ = s.notificationRepo.Create(ctx, notification.Notification{
		EmployeeID: emp.SupervisorID,
		Type:       notification.TypeVacationRequest,
		Title:      "Nova solicitação de férias",
		Message: fmt.Sprintf("%s solicitou férias de %s a %s (%d dias)",
			emp.FullName, v.StartDate.Format("02/01/2006"), v.EndDate.Format("02/01/2006"), v.Days),
		ActionURL: "/vacations/" + v.ID,
	})
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (vacation.VacationResponse, error) {
	v, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationResponse{}, vacation.ErrVacationNotFound
		}
		return vacation.VacationResponse{}, fmt.Errorf("failed to get vacation: %w", err)
	}
	return toResponse(v), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter vacation.Filter) ([]vacation.VacationResponse, error) {
	rows, _, err := s.vacationRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	resp := make([]vacation.VacationResponse, 0, len(rows))
	for _, v := range rows {
		resp = append(resp, toResponse(v))
	}
	return resp, nil
}

func (s *ServiceImpl) Transition(ctx context.Context, id, actorID string, req vacation.TransitionRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	v, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationResponse{}, vacation.ErrVacationNotFound
		}
		return vacation.VacationResponse{}, fmt.Errorf("failed to get vacation: %w", err)
	}

	next := vacation.Status(req.Status)
	if !v.Status.CanTransitionTo(next) {
		return vacation.VacationResponse{}, vacation.ErrInvalidTransition
	}

	v.Status = next
	switch next {
	case vacation.StatusApproved:
		now := time.Now().UTC()
		v.ApprovedBy = &actorID
		v.ApprovedAt = &now
	case vacation.StatusRejected:
		v.RejectionReason = req.Notes
	}

	updated, err := s.vacationRepo.Update(ctx, v)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to update vacation: %w", err)
	}
	return toResponse(updated), nil
}

func (s *ServiceImpl) balanceDays(ctx context.Context, emp employee.Employee, asOf time.Time) (int, error) {
	policy := tax.DefaultPolicy(asOf.Year())
	earned := EarnedDays(*emp.HireDate, asOf, policy)

	taken, err := s.takenDays(ctx, emp.ID, asOf)
	if err != nil {
		return 0, err
	}
	return Balance(earned, taken), nil
}

func (s *ServiceImpl) takenDays(ctx context.Context, employeeID string, asOf time.Time) (int, error) {
	rows, err := s.vacationRepo.ListCountedAsTaken(ctx, employeeID, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to list taken vacations: %w", err)
	}
	taken := 0
	for _, v := range rows {
		taken += v.Days
	}
	return taken, nil
}

func (s *ServiceImpl) Balance(ctx context.Context, employeeID string) (vacation.BalanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.BalanceResponse{}, employee.ErrEmployeeNotFound
		}
		return vacation.BalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.HireDate == nil {
		return vacation.BalanceResponse{}, employee.ErrNoHireDate
	}

	now := time.Now().UTC()
	policy := tax.DefaultPolicy(now.Year())
	earned := EarnedDays(*emp.HireDate, now, policy)
	taken, err := s.takenDays(ctx, employeeID, now)
	if err != nil {
		return vacation.BalanceResponse{}, err
	}

	resp := vacation.BalanceResponse{
		EmployeeID:  employeeID,
		EarnedDays:  earned,
		TakenDays:   taken,
		BalanceDays: Balance(earned, taken),
		Periods:     Periods(*emp.HireDate, now),
	}
	if expiry := NextExpiry(*emp.HireDate, now); expiry != nil {
		e := expiry.Format("2006-01-02")
		resp.NextExpiry = &e
	}
	return resp, nil
}

func (s *ServiceImpl) Proportional(ctx context.Context, employeeID string) (vacation.ProportionalResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.ProportionalResponse{}, employee.ErrEmployeeNotFound
		}
		return vacation.ProportionalResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.HireDate == nil {
		return vacation.ProportionalResponse{}, employee.ErrNoHireDate
	}

	// Payout runs to the termination date for dismissed employees,
	// to today for everyone else.
	asOf := time.Now().UTC()
	if emp.TerminationDate != nil {
		asOf = *emp.TerminationDate
	}
	policy := tax.DefaultPolicy(asOf.Year())
	months, days, value := Proportional(*emp.HireDate, asOf, emp.BaseSalary, policy)
	return vacation.ProportionalResponse{
		EmployeeID: employeeID,
		Months:     months,
		Days:       days,
		Value:      value,
	}, nil
}
