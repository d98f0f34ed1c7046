package notification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/domain/timerecord"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
)

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	n.CreatedAt = time.Now().UTC()
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) List(_ context.Context, _ notification.Filter) ([]notification.Notification, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeNotificationRepo) UnreadCount(_ context.Context, _ string) (int, error) {
	return len(f.created), nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ []string, _ string) error { return nil }

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ string) error { return nil }

func (f *fakeNotificationRepo) ExistsSince(_ context.Context, employeeID string, notifType notification.Type, titlePart string, since time.Time) (bool, error) {
	for _, n := range f.created {
		if n.EmployeeID != nil && *n.EmployeeID == employeeID &&
			n.Type == notifType &&
			strings.Contains(n.Title, titlePart) &&
			!n.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	documents []employee.Document
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) GetByNumber(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, nil
}
func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) ListActiveWithHireDate(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) CountTaxDependents(_ context.Context, _ string) (int, error) {
	return 0, nil
}
func (f *fakeEmployeeRepo) CreateDependent(_ context.Context, d employee.Dependent) (employee.Dependent, error) {
	return d, nil
}
func (f *fakeEmployeeRepo) ListDependents(_ context.Context, _ string) ([]employee.Dependent, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) CreateDocument(_ context.Context, d employee.Document) (employee.Document, error) {
	return d, nil
}
func (f *fakeEmployeeRepo) ListDocuments(_ context.Context, _ string) ([]employee.Document, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) ListDocumentsExpiringBetween(_ context.Context, from, to time.Time) ([]employee.Document, error) {
	var out []employee.Document
	for _, d := range f.documents {
		if d.ExpiryDate != nil && !d.ExpiryDate.Before(from) && !d.ExpiryDate.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeVacationRepo struct {
	taken []vacation.Vacation
}

func (f *fakeVacationRepo) Create(_ context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	return v, nil
}
func (f *fakeVacationRepo) GetByID(_ context.Context, _ string) (vacation.Vacation, error) {
	return vacation.Vacation{}, nil
}
func (f *fakeVacationRepo) List(_ context.Context, _ vacation.Filter) ([]vacation.Vacation, int64, error) {
	return nil, 0, nil
}
func (f *fakeVacationRepo) Update(_ context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	return v, nil
}
func (f *fakeVacationRepo) ListCountedAsTaken(_ context.Context, employeeID string, _ time.Time) ([]vacation.Vacation, error) {
	var out []vacation.Vacation
	for _, v := range f.taken {
		if v.EmployeeID == employeeID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeTimeRecordRepo struct {
	pending []timerecord.PendingSummary
}

func (f *fakeTimeRecordRepo) Create(_ context.Context, r timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	return r, nil
}
func (f *fakeTimeRecordRepo) GetByID(_ context.Context, _ string) (timerecord.TimeRecord, error) {
	return timerecord.TimeRecord{}, nil
}
func (f *fakeTimeRecordRepo) List(_ context.Context, _ timerecord.Filter) ([]timerecord.TimeRecord, int64, error) {
	return nil, 0, nil
}
func (f *fakeTimeRecordRepo) Approve(_ context.Context, _, _ string) (timerecord.TimeRecord, error) {
	return timerecord.TimeRecord{}, nil
}
func (f *fakeTimeRecordRepo) ListApprovedForMonth(_ context.Context, _ string, _, _ int) ([]timerecord.TimeRecord, error) {
	return nil, nil
}
func (f *fakeTimeRecordRepo) PendingBySupervisor(_ context.Context, _ time.Time) ([]timerecord.PendingSummary, error) {
	return f.pending, nil
}

func newSweepService(notifRepo *fakeNotificationRepo, empRepo *fakeEmployeeRepo, vacRepo *fakeVacationRepo, trRepo *fakeTimeRecordRepo) *ServiceImpl {
	return &ServiceImpl{
		notificationRepo: notifRepo,
		employeeRepo:     empRepo,
		vacationRepo:     vacRepo,
		timeRecordRepo:   trRepo,
	}
}

func TestSweepDocuments(t *testing.T) {
	now := time.Now().UTC()
	soon := now.Add(3 * 24 * time.Hour)
	later := now.Add(20 * 24 * time.Hour)
	far := now.Add(60 * 24 * time.Hour)

	notifRepo := &fakeNotificationRepo{}
	empRepo := &fakeEmployeeRepo{
		documents: []employee.Document{
			{EmployeeID: "emp-1", Name: "CNH", ExpiryDate: &soon, IsActive: true},
			{EmployeeID: "emp-2", Name: "Contrato", ExpiryDate: &later, IsActive: true},
			{EmployeeID: "emp-3", Name: "RG", ExpiryDate: &far, IsActive: true},
		},
	}
	svc := newSweepService(notifRepo, empRepo, &fakeVacationRepo{}, &fakeTimeRecordRepo{})

	result, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Documents)

	// The document inside seven days gets the urgent wording.
	var urgent, normal int
	for _, n := range notifRepo.created {
		if strings.Contains(n.Title, "expira em breve") {
			urgent++
		} else {
			normal++
		}
	}
	assert.Equal(t, 1, urgent)
	assert.Equal(t, 1, normal)

	// A second run inside the dedupe window creates nothing new.
	again, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Documents)
	assert.Len(t, notifRepo.created, 2)
}

func TestSweepVacations(t *testing.T) {
	now := time.Now().UTC()

	t.Run("expiring entitlement alerts", func(t *testing.T) {
		// First period closed ~350 days ago, so its entitlement lapses
		// in ~15 days.
		hire := now.AddDate(0, 0, -715)
		notifRepo := &fakeNotificationRepo{}
		empRepo := &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Status: employee.StatusActive, HireDate: &hire}},
		}
		svc := newSweepService(notifRepo, empRepo, &fakeVacationRepo{}, &fakeTimeRecordRepo{})

		result, err := svc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Vacations)
		assert.Equal(t, notification.TypeVacationExpiring, notifRepo.created[0].Type)
	})

	t.Run("low balance alerts", func(t *testing.T) {
		// 400 days in, two acquisition windows have opened: 60 earned.
		hire := now.AddDate(0, 0, -400)
		notifRepo := &fakeNotificationRepo{}
		empRepo := &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Status: employee.StatusActive, HireDate: &hire}},
		}
		vacRepo := &fakeVacationRepo{
			taken: []vacation.Vacation{{EmployeeID: "emp-1", Status: vacation.StatusTaken, Days: 57}},
		}
		svc := newSweepService(notifRepo, empRepo, vacRepo, &fakeTimeRecordRepo{})

		result, err := svc.Sweep(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, result.Vacations)
		assert.Equal(t, notification.TypeVacationBalanceLow, notifRepo.created[0].Type)
		assert.Contains(t, notifRepo.created[0].Message, "3 dias")
	})

	t.Run("zero balance stays quiet", func(t *testing.T) {
		hire := now.AddDate(0, 0, -400)
		notifRepo := &fakeNotificationRepo{}
		empRepo := &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Status: employee.StatusActive, HireDate: &hire}},
		}
		vacRepo := &fakeVacationRepo{
			taken: []vacation.Vacation{{EmployeeID: "emp-1", Status: vacation.StatusTaken, Days: 60}},
		}
		svc := newSweepService(notifRepo, empRepo, vacRepo, &fakeTimeRecordRepo{})

		result, err := svc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.Vacations)
	})
}

func TestSweepPendingPunches(t *testing.T) {
	notifRepo := &fakeNotificationRepo{}
	trRepo := &fakeTimeRecordRepo{
		pending: []timerecord.PendingSummary{
			{SupervisorID: "sup-1", PendingCount: 4},
			{SupervisorID: "sup-2", PendingCount: 0},
		},
	}
	svc := newSweepService(notifRepo, &fakeEmployeeRepo{}, &fakeVacationRepo{}, trRepo)

	result, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.TimeRecords)
	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, "sup-1", *notifRepo.created[0].EmployeeID)
	assert.Contains(t, notifRepo.created[0].Message, "4 registros")
}
