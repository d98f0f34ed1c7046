package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	taxdomain "github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type ServiceImpl struct {
	db             *database.DB
	timeRecordRepo timerecord.Repository
	employeeRepo   employee.Repository
}

func NewService(
	db *database.DB,
	timeRecordRepo timerecord.Repository,
	employeeRepo employee.Repository,
) timerecord.Service {
	return &ServiceImpl{
		db:             db,
		timeRecordRepo: timeRecordRepo,
		employeeRepo:   employeeRepo,
	}
}

func toResponse(r timerecord.TimeRecord) timerecord.TimeRecordResponse {
	resp := timerecord.TimeRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Type:          string(r.Type),
		Date:          r.Date.Format("2006-01-02"),
		PunchedAt:     r.PunchedAt,
		IsApproved:    r.IsApproved,
		ApprovedBy:    r.ApprovedBy,
		ApprovedAt:    r.ApprovedAt,
		Justification: r.Justification,
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	return resp
}

func (s *ServiceImpl) Punch(ctx context.Context, req timerecord.PunchRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecordResponse{}, employee.ErrEmployeeNotFound
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	punchedAt, _ := time.Parse(time.RFC3339, req.PunchedAt)
	punchedAt = punchedAt.UTC()

	record := timerecord.TimeRecord{
		EmployeeID:    req.EmployeeID,
		Type:          timerecord.RecordType(req.Type),
		Date:          time.Date(punchedAt.Year(), punchedAt.Month(), punchedAt.Day(), 0, 0, 0, 0, time.UTC),
		PunchedAt:     punchedAt,
		Justification: req.Justification,
	}

	created, err := s.timeRecordRepo.Create(ctx, record)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to create time record: %w", err)
	}
	return toResponse(created), nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (timerecord.TimeRecordResponse, error) {
	r, err := s.timeRecordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrTimeRecordNotFound
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get time record: %w", err)
	}
	return toResponse(r), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter timerecord.Filter) ([]timerecord.TimeRecordResponse, error) {
	rows, _, err := s.timeRecordRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	resp := make([]timerecord.TimeRecordResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, toResponse(r))
	}
	return resp, nil
}

func (s *ServiceImpl) Approve(ctx context.Context, id, approvedBy string) (timerecord.TimeRecordResponse, error) {
	existing, err := s.timeRecordRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecordResponse{}, timerecord.ErrTimeRecordNotFound
		}
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to get time record: %w", err)
	}
	if existing.IsApproved {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyApproved
	}

	approved, err := s.timeRecordRepo.Approve(ctx, id, approvedBy)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to approve time record: %w", err)
	}
	return toResponse(approved), nil
}

func (s *ServiceImpl) MonthlySummary(ctx context.Context, employeeID string, year, month int) (timerecord.MonthlySummaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.MonthlySummaryResponse{}, employee.ErrEmployeeNotFound
		}
		return timerecord.MonthlySummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.timeRecordRepo.ListApprovedForMonth(ctx, employeeID, year, month)
	if err != nil {
		return timerecord.MonthlySummaryResponse{}, fmt.Errorf("failed to list time records: %w", err)
	}

	summary := Summarize(records, emp.WeeklyHours, taxdomain.DefaultPolicy(year))
	return timerecord.MonthlySummaryResponse{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		WorkedHours:   summary.WorkedHours.StringFixed(2),
		ExpectedHours: summary.ExpectedHours.StringFixed(2),
		OvertimeHours: summary.OvertimeHours.StringFixed(2),
		DaysWorked:    summary.DaysWorked,
	}, nil
}
