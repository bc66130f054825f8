package attendance

import "time"

// Day statuses.
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusAbsent  = "Absent"
	StatusExcused = "Excused"
)

// Penalty labels match the Arabic wording HR reads on the exported sheets.
const (
	PenaltyLateArrival  = "تأخير"
	PenaltyMissingStamp = "سهو بصمة"
	PenaltyEarlyLeave   = "انصراف مبكر"
	PenaltyAbsence      = "غياب"
)

// Penalty is one deduction entry. Value is in day-fractions (0.25 = quarter
// day). Minutes is only set for late-arrival penalties.
type Penalty struct {
	Type    string  `json:"type"`
	Value   float64 `json:"value"`
	Minutes int     `json:"minutes,omitempty"`
}

// Record is the computed attendance row for one (employee, local day).
// Reprocessing overwrites the computed fields in place; the
// (EmployeeCode, Date) pair is unique.
type Record struct {
	ID            int
	EmployeeCode  string
	Date          string // local calendar date YYYY-MM-DD
	CheckIn       *time.Time
	CheckOut      *time.Time
	TotalHours    float64
	OvertimeHours float64
	Status        string
	Penalties     []Penalty
	IsOvernight   bool
	Notes         *string
	MissionStart  *string // HH:MM:SS
	MissionEnd    *string // HH:MM:SS
	HalfDayExcused bool
}
