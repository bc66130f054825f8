package punchlink

import "time"

// Actions an operator can take on a suspicious post-midnight punch.
// current_day_checkin is the no-op default for undecided punches.
const (
	ActionPreviousDayCheckout = "previous_day_checkout"
	ActionCurrentDayCheckin   = "current_day_checkin"
	ActionIgnore              = "ignore"
)

var Actions = []string{
	ActionPreviousDayCheckout,
	ActionCurrentDayCheckin,
	ActionIgnore,
}

// Decision records an operator's ruling for one exact punch. Keyed by
// (employee code, punch timestamp); saving again overwrites — last write
// wins.
type Decision struct {
	ID             int
	EmployeeCode   string
	PunchDatetime  time.Time // exact UTC instant of the punch
	Action         string
	TargetBaseDate *string // local date the punch is linked back to
	Note           *string
	DecidedAt      time.Time
}

// Key identifies the punch a decision applies to.
func (d Decision) Key() string {
	return Key(d.EmployeeCode, d.PunchDatetime)
}

func Key(employeeCode string, punchDatetime time.Time) string {
	return employeeCode + "__" + punchDatetime.UTC().Format(time.RFC3339)
}
