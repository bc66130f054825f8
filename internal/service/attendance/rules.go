package attendance

import (
	"sort"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
)

// shiftResolution is the per-(employee, day) outcome of rule matching.
type shiftResolution struct {
	ShiftStart  string
	ShiftEnd    string
	IsOvernight bool
}

// resolveShift filters rules by validity window and scope, orders them by
// priority descending (insertion order breaks ties), and takes shift times
// from the first custom_shift match. The overnight flag is OR'd across all
// matches, not just the winner.
func resolveShift(emp employee.Employee, day string, rules []rule.Rule) shiftResolution {
	var matches []rule.Rule
	for _, r := range rules {
		if r.AppliesOn(day) && r.Scope.Matches(emp) {
			matches = append(matches, r)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority > matches[j].Priority
	})

	res := shiftResolution{
		ShiftStart: emp.ShiftStart,
		ShiftEnd:   employee.DefaultShiftEnd,
	}
	if res.ShiftStart == "" {
		res.ShiftStart = employee.DefaultShiftStart
	}

	for _, m := range matches {
		if m.RuleType == rule.TypeOvertimeOvernight {
			res.IsOvernight = true
		}
	}
	for _, m := range matches {
		if m.RuleType == rule.TypeCustomShift {
			if m.Params.ShiftStart != "" {
				res.ShiftStart = m.Params.ShiftStart
			}
			if m.Params.ShiftEnd != "" {
				res.ShiftEnd = m.Params.ShiftEnd
			}
			break
		}
	}

	return res
}
