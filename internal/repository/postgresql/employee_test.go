package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
	"github.com/viniciussvasques/innexar-hr/internal/repository/postgresql"
)

func newTestEmployee(number string) employee.Employee {
	hireDate := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	return employee.Employee{
		EmployeeNumber: number,
		FullName:       "Maria Souza",
		JobTitle:       "Analista",
		Status:         employee.StatusActive,
		ContractType:   employee.ContractCLT,
		HireDate:       &hireDate,
		BaseSalary:     decimal.NewFromInt(4400),
		WeeklyHours:    decimal.NewFromInt(44),
	}
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	setup := requireTestDB(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewEmployeeRepository(setup.DB)

	created, err := repo.Create(ctx, newTestEmployee("EMP001"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", got.EmployeeNumber)
	assert.Equal(t, "Maria Souza", got.FullName)
	assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(4400)))

	byNumber, err := repo.GetByNumber(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNumber.ID)
}

func TestEmployeeRepository_DuplicateNumber(t *testing.T) {
	setup := requireTestDB(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewEmployeeRepository(setup.DB)

	_, err := repo.Create(ctx, newTestEmployee("EMP002"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestEmployee("EMP002"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNumberExists)
}

func TestEmployeeRepository_ListFilters(t *testing.T) {
	setup := requireTestDB(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewEmployeeRepository(setup.DB)

	active := newTestEmployee("EMP010")
	_, err := repo.Create(ctx, active)
	require.NoError(t, err)

	terminated := newTestEmployee("EMP011")
	terminated.FullName = "Joao Lima"
	terminated.Status = employee.StatusTerminated
	_, err = repo.Create(ctx, terminated)
	require.NoError(t, err)

	status := employee.StatusActive
	list, total, err := repo.List(ctx, employee.Filter{Status: &status, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP010", list[0].EmployeeNumber)

	list, total, err = repo.List(ctx, employee.Filter{Search: "Joao", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "Joao Lima", list[0].FullName)
}

func TestEmployeeRepository_TaxDependents(t *testing.T) {
	setup := requireTestDB(t)
	defer setup.Close()
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewEmployeeRepository(setup.DB)

	created, err := repo.Create(ctx, newTestEmployee("EMP020"))
	require.NoError(t, err)

	_, err = repo.CreateDependent(ctx, employee.Dependent{
		EmployeeID:     created.ID,
		Name:           "Filho A",
		IsTaxDependent: true,
	})
	require.NoError(t, err)
	_, err = repo.CreateDependent(ctx, employee.Dependent{
		EmployeeID:     created.ID,
		Name:           "Filho B",
		IsTaxDependent: false,
	})
	require.NoError(t, err)

	count, err := repo.CountTaxDependents(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
