package rule

import (
	"strings"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
)

// Scope restricts which employees a rule applies to. The wire format is
// "all", "sector:<name>", "dept:<name>" or "emp:<csv-of-codes>".
type Scope struct {
	kind      scopeKind
	value     string
	employees map[string]struct{}
}

type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeSector
	scopeDepartment
	scopeEmployeeSet
)

// ParseScope parses the wire format. Unknown prefixes fail so that a typo in
// a rule never silently matches nobody.
func ParseScope(raw string) (Scope, bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "all":
		return Scope{kind: scopeAll}, true
	case strings.HasPrefix(raw, "sector:"):
		v := strings.TrimPrefix(raw, "sector:")
		if v == "" {
			return Scope{}, false
		}
		return Scope{kind: scopeSector, value: v}, true
	case strings.HasPrefix(raw, "dept:"):
		v := strings.TrimPrefix(raw, "dept:")
		if v == "" {
			return Scope{}, false
		}
		return Scope{kind: scopeDepartment, value: v}, true
	case strings.HasPrefix(raw, "emp:"):
		codes := make(map[string]struct{})
		for _, code := range strings.Split(strings.TrimPrefix(raw, "emp:"), ",") {
			code = strings.TrimSpace(code)
			if code != "" {
				codes[code] = struct{}{}
			}
		}
		if len(codes) == 0 {
			return Scope{}, false
		}
		return Scope{kind: scopeEmployeeSet, value: strings.TrimPrefix(raw, "emp:"), employees: codes}, true
	}
	return Scope{}, false
}

// Matches reports whether the scope covers the given employee.
func (s Scope) Matches(emp employee.Employee) bool {
	switch s.kind {
	case scopeAll:
		return true
	case scopeSector:
		return emp.Sector != nil && *emp.Sector == s.value
	case scopeDepartment:
		return emp.Department != nil && *emp.Department == s.value
	case scopeEmployeeSet:
		_, ok := s.employees[emp.Code]
		return ok
	}
	return false
}

// String returns the wire format.
func (s Scope) String() string {
	switch s.kind {
	case scopeAll:
		return "all"
	case scopeSector:
		return "sector:" + s.value
	case scopeDepartment:
		return "dept:" + s.value
	case scopeEmployeeSet:
		return "emp:" + s.value
	}
	return ""
}
