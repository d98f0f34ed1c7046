package cron

import (
	"context"
	"time"

	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
)

// NotificationJobs contains the periodic HR alert sweeps.
type NotificationJobs struct {
	notificationService notification.Service
	interval            time.Duration
}

func NewNotificationJobs(notificationService notification.Service, interval time.Duration) *NotificationJobs {
	return &NotificationJobs{
		notificationService: notificationService,
		interval:            interval,
	}
}

// RegisterJobs registers the notification sweep on the scheduler.
func (j *NotificationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("hr_notification_sweep", j.interval, j.RunSweep)
}

// RunSweep scans documents, vacation balances and pending time records
// and creates the corresponding alerts.
func (j *NotificationJobs) RunSweep(ctx context.Context) error {
	_, err := j.notificationService.Sweep(ctx)
	return err
}
