package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

const notificationColumns = `
	id, employee_id, type, title, message, action_url, is_read, read_at, created_at`

func scanNotification(row interface{ Scan(dest ...any) error }) (notification.Notification, error) {
	var n notification.Notification
	err := row.Scan(
		&n.ID, &n.EmployeeID, &n.Type, &n.Title, &n.Message,
		&n.ActionURL, &n.IsRead, &n.ReadAt, &n.CreatedAt,
	)
	return n, err
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO notifications (id, employee_id, type, title, message, action_url, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := q.Exec(ctx, query,
		n.ID, n.EmployeeID, string(n.Type), n.Title, n.Message,
		n.ActionURL, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

func (r *notificationRepository) List(ctx context.Context, filter notification.Filter) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argNum := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argNum))
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argNum))
		args = append(args, string(*filter.Type))
		argNum++
	}
	if filter.Unread != nil && *filter.Unread {
		conditions = append(conditions, "is_read = FALSE")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE ` + where +
		` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

func (r *notificationRepository) UnreadCount(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE employee_id = $1 AND is_read = FALSE`
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, ids []string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $3
		WHERE id = ANY($1) AND employee_id = $2 AND is_read = FALSE
	`
	if _, err := q.Exec(ctx, query, ids, employeeID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $2
		WHERE employee_id = $1 AND is_read = FALSE
	`
	if _, err := q.Exec(ctx, query, employeeID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) ExistsSince(ctx context.Context, employeeID string, notifType notification.Type, titlePart string, since time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE employee_id = $1 AND type = $2 AND title LIKE '%' || $3 || '%' AND created_at >= $4
		)
	`
	if err := q.QueryRow(ctx, query, employeeID, string(notifType), titlePart, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}
	return exists, nil
}
