package punch

import "time"

// Punch is one raw biometric clock event. Rows are append-only; the engine
// derives check-in/out by ordering, never by mutating punches.
type Punch struct {
	ID            int
	EmployeeCode  string
	PunchDatetime time.Time // stored UTC
}
