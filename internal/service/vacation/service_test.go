package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/domain/vacation"
)

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return employee.Employee{}, pgx.ErrNoRows
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
	return nil, nil
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
func (f *fakeEmployeeRepo) ListDocumentsExpiringBetween(_ context.Context, _, _ time.Time) ([]employee.Document, error) {
	return nil, nil
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
func (f *fakeVacationRepo) ListCountedAsTaken(_ context.Context, _ string, _ time.Time) ([]vacation.Vacation, error) {
	return f.taken, nil
}

func newBalanceService(empRepo *fakeEmployeeRepo, vacRepo *fakeVacationRepo) *ServiceImpl {
	return &ServiceImpl{
		employeeRepo: empRepo,
		vacationRepo: vacRepo,
	}
}

func TestProportional_TerminatedEmployee(t *testing.T) {
	hire := date(2020, 1, 1)
	termination := date(2021, 7, 1)
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {
			ID:              "emp-1",
			HireDate:        &hire,
			TerminationDate: &termination,
			BaseSalary:      decimal.NewFromInt(3000),
		},
	}}
	svc := newBalanceService(empRepo, &fakeVacationRepo{})

	// Accrual stops at the termination date, not at the current day.
	resp, err := svc.Proportional(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 18, resp.Months)
	assert.True(t, resp.Days.Equal(decimal.NewFromInt(45)), "days %s", resp.Days)
	assert.True(t, resp.Value.Equal(decimal.RequireFromString("4500.00")), "value %s", resp.Value)
}

func TestProportional_ActiveEmployeeRunsToToday(t *testing.T) {
	now := time.Now().UTC()
	hire := now.AddDate(-1, 0, 0)
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", HireDate: &hire, BaseSalary: decimal.NewFromInt(3000)},
	}}
	svc := newBalanceService(empRepo, &fakeVacationRepo{})

	resp, err := svc.Proportional(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Months)
	assert.True(t, resp.Days.Equal(decimal.NewFromInt(30)), "days %s", resp.Days)
}

func TestProportional_NoHireDate(t *testing.T) {
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1"},
	}}
	svc := newBalanceService(empRepo, &fakeVacationRepo{})

	_, err := svc.Proportional(context.Background(), "emp-1")
	assert.ErrorIs(t, err, employee.ErrNoHireDate)
}

func TestBalance_SoldDaysNotCounted(t *testing.T) {
	now := time.Now().UTC()
	hire := now.AddDate(0, 0, -400)
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", HireDate: &hire},
	}}
	vacRepo := &fakeVacationRepo{
		taken: []vacation.Vacation{
			{EmployeeID: "emp-1", Status: vacation.StatusTaken, Days: 10, SellDays: 10},
		},
	}
	svc := newBalanceService(empRepo, vacRepo)

	resp, err := svc.Balance(context.Background(), "emp-1")
	require.NoError(t, err)
	// Two windows opened by day 400. Only the taken days reduce the
	// balance, sold days do not.
	assert.Equal(t, 60, resp.EarnedDays)
	assert.Equal(t, 10, resp.TakenDays)
	assert.Equal(t, 50, resp.BalanceDays)
	assert.Len(t, resp.Periods, 2)
	require.NotNil(t, resp.NextExpiry)
	assert.Equal(t, hire.AddDate(0, 0, 730).Format("2006-01-02"), *resp.NextExpiry)
}
