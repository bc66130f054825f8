package rule

// RuleType selects the behavior a rule carries. Only custom_shift and
// overtime_overnight are consumed by the computation engine; the rest are
// reserved for future handling and pass through the API unchanged.
const (
	TypeCustomShift       = "custom_shift"
	TypeOvertimeOvernight = "overtime_overnight"
	TypeAttendanceExempt  = "attendance_exempt"
	TypePenaltyOverride   = "penalty_override"
	TypeIgnoreBiometric   = "ignore_biometric"
)

var Types = []string{
	TypeCustomShift,
	TypeOvertimeOvernight,
	TypeAttendanceExempt,
	TypePenaltyOverride,
	TypeIgnoreBiometric,
}

// Params carries the rule payload; only custom_shift reads it today.
type Params struct {
	ShiftStart string `json:"shiftStart,omitempty"`
	ShiftEnd   string `json:"shiftEnd,omitempty"`
}

// Rule is a time-bounded business rule. StartDate/EndDate are local calendar
// dates (YYYY-MM-DD, inclusive). Higher priority wins; insertion order breaks
// ties.
type Rule struct {
	ID        int
	Name      string
	Priority  int
	Scope     Scope
	StartDate string
	EndDate   string
	RuleType  string
	Params    Params
}

// AppliesOn reports whether day (YYYY-MM-DD) falls inside the rule's validity
// window. Lexicographic comparison is exact for ISO dates.
func (r Rule) AppliesOn(day string) bool {
	return r.StartDate <= day && day <= r.EndDate
}
