package attendance

import (
	"testing"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScope(t *testing.T, raw string) rule.Scope {
	t.Helper()
	s, ok := rule.ParseScope(raw)
	require.True(t, ok, "scope %q must parse", raw)
	return s
}

func TestResolveShift(t *testing.T) {
	emp := employee.Employee{Code: "1001", Sector: strp("مصنع"), ShiftStart: "08:00"}

	t.Run("no rules falls back to the employee shift start and default end", func(t *testing.T) {
		got := resolveShift(emp, "2025-01-15", nil)
		assert.Equal(t, "08:00", got.ShiftStart)
		assert.Equal(t, employee.DefaultShiftEnd, got.ShiftEnd)
		assert.False(t, got.IsOvernight)
	})

	t.Run("empty employee shift start uses the system default", func(t *testing.T) {
		got := resolveShift(employee.Employee{Code: "1002"}, "2025-01-15", nil)
		assert.Equal(t, employee.DefaultShiftStart, got.ShiftStart)
	})

	t.Run("custom shift inside its window overrides both times", func(t *testing.T) {
		rules := []rule.Rule{{
			ID: 1, Priority: 5, Scope: mustScope(t, "all"),
			StartDate: "2025-01-01", EndDate: "2025-01-31",
			RuleType: rule.TypeCustomShift,
			Params:   rule.Params{ShiftStart: "10:00", ShiftEnd: "18:00"},
		}}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "10:00", got.ShiftStart)
		assert.Equal(t, "18:00", got.ShiftEnd)
	})

	t.Run("rule outside its validity window is ignored", func(t *testing.T) {
		rules := []rule.Rule{{
			ID: 1, Priority: 5, Scope: mustScope(t, "all"),
			StartDate: "2025-02-01", EndDate: "2025-02-28",
			RuleType: rule.TypeCustomShift,
			Params:   rule.Params{ShiftStart: "10:00"},
		}}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "08:00", got.ShiftStart)
	})

	t.Run("scope mismatch is ignored", func(t *testing.T) {
		rules := []rule.Rule{{
			ID: 1, Priority: 5, Scope: mustScope(t, "sector:إدارة"),
			StartDate: "2025-01-01", EndDate: "2025-01-31",
			RuleType: rule.TypeCustomShift,
			Params:   rule.Params{ShiftStart: "10:00"},
		}}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "08:00", got.ShiftStart)
	})

	t.Run("higher priority custom shift wins", func(t *testing.T) {
		rules := []rule.Rule{
			{
				ID: 1, Priority: 1, Scope: mustScope(t, "all"),
				StartDate: "2025-01-01", EndDate: "2025-01-31",
				RuleType: rule.TypeCustomShift,
				Params:   rule.Params{ShiftStart: "07:00"},
			},
			{
				ID: 2, Priority: 9, Scope: mustScope(t, "emp:1001"),
				StartDate: "2025-01-01", EndDate: "2025-01-31",
				RuleType: rule.TypeCustomShift,
				Params:   rule.Params{ShiftStart: "11:00"},
			},
		}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "11:00", got.ShiftStart)
	})

	t.Run("equal priority falls back to insertion order", func(t *testing.T) {
		rules := []rule.Rule{
			{
				ID: 1, Priority: 5, Scope: mustScope(t, "all"),
				StartDate: "2025-01-01", EndDate: "2025-01-31",
				RuleType: rule.TypeCustomShift,
				Params:   rule.Params{ShiftStart: "07:00"},
			},
			{
				ID: 2, Priority: 5, Scope: mustScope(t, "all"),
				StartDate: "2025-01-01", EndDate: "2025-01-31",
				RuleType: rule.TypeCustomShift,
				Params:   rule.Params{ShiftStart: "11:00"},
			},
		}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "07:00", got.ShiftStart)
	})

	t.Run("empty param on the winning rule keeps the fallback value", func(t *testing.T) {
		rules := []rule.Rule{{
			ID: 1, Priority: 5, Scope: mustScope(t, "all"),
			StartDate: "2025-01-01", EndDate: "2025-01-31",
			RuleType: rule.TypeCustomShift,
			Params:   rule.Params{ShiftEnd: "19:00"},
		}}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "08:00", got.ShiftStart)
		assert.Equal(t, "19:00", got.ShiftEnd)
	})

	t.Run("overnight flag comes from any match, not just the winner", func(t *testing.T) {
		rules := []rule.Rule{
			{
				ID: 1, Priority: 9, Scope: mustScope(t, "all"),
				StartDate: "2025-01-01", EndDate: "2025-01-31",
				RuleType: rule.TypeCustomShift,
				Params:   rule.Params{ShiftStart: "18:00", ShiftEnd: "02:00"},
			},
			{
				ID: 2, Priority: 1, Scope: mustScope(t, "emp:1001"),
				StartDate: "2025-01-01", EndDate: "2025-01-31",
				RuleType: rule.TypeOvertimeOvernight,
			},
		}
		got := resolveShift(emp, "2025-01-15", rules)
		assert.Equal(t, "18:00", got.ShiftStart)
		assert.True(t, got.IsOvernight)
	})
}
