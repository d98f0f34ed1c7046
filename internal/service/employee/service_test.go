package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciussvasques/innexar-hr/internal/domain/employee"
)

func TestDiffHistory(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	deptA := "dept-a"
	deptB := "dept-b"

	base := employee.Employee{
		ID:           "emp-1",
		JobTitle:     "Analista",
		DepartmentID: &deptA,
		Status:       employee.StatusActive,
		BaseSalary:   decimal.NewFromInt(3000),
	}

	t.Run("no changes no rows", func(t *testing.T) {
		assert.Empty(t, DiffHistory(base, base, today))
	})

	t.Run("title change alone is a position row", func(t *testing.T) {
		updated := base
		updated.JobTitle = "Analista Senior"
		rows := DiffHistory(base, updated, today)
		require.Len(t, rows, 1)
		assert.Equal(t, employee.ChangePosition, rows[0].ChangeType)
		assert.Equal(t, "Analista", rows[0].OldJobTitle)
		assert.Equal(t, "Analista Senior", rows[0].NewJobTitle)
	})

	t.Run("title plus raise is a promotion plus salary row", func(t *testing.T) {
		updated := base
		updated.JobTitle = "Coordenador"
		updated.BaseSalary = decimal.NewFromInt(4500)
		rows := DiffHistory(base, updated, today)
		require.Len(t, rows, 2)
		assert.Equal(t, employee.ChangePromotion, rows[0].ChangeType)
		assert.Equal(t, employee.ChangeSalary, rows[1].ChangeType)
		require.NotNil(t, rows[1].OldSalary)
		assert.True(t, rows[1].OldSalary.Equal(decimal.NewFromInt(3000)))
		assert.True(t, rows[1].NewSalary.Equal(decimal.NewFromInt(4500)))
	})

	t.Run("title plus pay cut stays a position row", func(t *testing.T) {
		updated := base
		updated.JobTitle = "Assistente"
		updated.BaseSalary = decimal.NewFromInt(2500)
		rows := DiffHistory(base, updated, today)
		require.Len(t, rows, 2)
		assert.Equal(t, employee.ChangePosition, rows[0].ChangeType)
	})

	t.Run("department move", func(t *testing.T) {
		updated := base
		updated.DepartmentID = &deptB
		rows := DiffHistory(base, updated, today)
		require.Len(t, rows, 1)
		assert.Equal(t, employee.ChangeDepartment, rows[0].ChangeType)
	})

	t.Run("status change gets its own kind", func(t *testing.T) {
		updated := base
		updated.Status = employee.StatusTerminated
		rows := DiffHistory(base, updated, today)
		require.Len(t, rows, 1)
		assert.Equal(t, employee.ChangeStatus, rows[0].ChangeType)
		assert.Equal(t, "active -> terminated", rows[0].Notes)
	})

	t.Run("every dimension at once", func(t *testing.T) {
		updated := base
		updated.JobTitle = "Gerente"
		updated.BaseSalary = decimal.NewFromInt(8000)
		updated.DepartmentID = &deptB
		updated.Status = employee.StatusOnLeave
		rows := DiffHistory(base, updated, today)
		assert.Len(t, rows, 4)
		for _, h := range rows {
			assert.Equal(t, today, h.EffectiveDate)
			assert.Equal(t, "emp-1", h.EmployeeID)
		}
	})
}
