// Package notification serves the in-app inbox and runs the scheduled
// alert sweeps for expiring documents, lapsing vacation entitlements
// and punches waiting on approval.
package notification

import (
	"context"
	"fmt"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type ServiceImpl struct {
	db               *database.DB
	notificationRepo notification.Repository
	employeeRepo     employee.Repository
	vacationRepo     vacation.Repository
	timeRecordRepo   timerecord.Repository
}

func NewService(
	db *database.DB,
	notificationRepo notification.Repository,
	employeeRepo employee.Repository,
	vacationRepo vacation.Repository,
	timeRecordRepo timerecord.Repository,
) notification.Service {
	return &ServiceImpl{
		db:               db,
		notificationRepo: notificationRepo,
		employeeRepo:     employeeRepo,
		vacationRepo:     vacationRepo,
		timeRecordRepo:   timeRecordRepo,
	}
}

func toResponse(n notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		ActionURL: n.ActionURL,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (s *ServiceImpl) List(ctx context.Context, filter notification.Filter) ([]notification.NotificationResponse, error) {
	rows, _, err := s.notificationRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	resp := make([]notification.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		resp = append(resp, toResponse(n))
	}
	return resp, nil
}

func (s *ServiceImpl) UnreadCount(ctx context.Context, employeeID string) (int, error) {
	count, err := s.notificationRepo.UnreadCount(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *ServiceImpl) MarkRead(ctx context.Context, employeeID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.notificationRepo.MarkRead(ctx, ids, employeeID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *ServiceImpl) MarkAllRead(ctx context.Context, employeeID string) error {
	if err := s.notificationRepo.MarkAllRead(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
