package attendance

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/timeutil"
)

// graceSeconds is the tolerance before lateness or early leave triggers a
// penalty.
const graceSeconds = 15 * timeutil.SecondsPerMinute

type classifyInput struct {
	CheckInSeconds  *int
	CheckOutSeconds *int

	EffectiveShiftStartSeconds int
	EffectiveShiftEndSeconds   int

	// DefaultShiftEndSeconds is the pre-adjustment shift end; a mission
	// covering through it keeps the day Present instead of Excused.
	DefaultShiftEndSeconds int

	SuppressPenalties   bool
	HalfDayExcused      bool
	MissionStartSeconds *int
	MissionEndSeconds   *int
}

type dayClassification struct {
	Status              string
	Penalties           []attendance.Penalty
	IsExcused           bool
	MissingCheckout     bool
	EarlyLeaveTriggered bool
}

// classifyDay turns observed stamps plus the effective shift envelope into a
// status and penalty list. Excused days never carry penalties.
func classifyDay(in classifyInput) dayClassification {
	excusedByHalfDay := in.HalfDayExcused && in.CheckInSeconds == nil && in.CheckOutSeconds == nil
	excusedByMission := in.MissionStartSeconds != nil && in.MissionEndSeconds != nil
	isExcused := excusedByHalfDay || excusedByMission || in.SuppressPenalties

	out := dayClassification{
		Status:    attendance.StatusPresent,
		IsExcused: isExcused,
	}

	var latePenalty attendance.Penalty
	if !isExcused && in.CheckInSeconds != nil {
		lateSeconds := *in.CheckInSeconds - in.EffectiveShiftStartSeconds
		if lateSeconds > graceSeconds {
			out.Status = attendance.StatusLate
			lateMinutes := (lateSeconds + timeutil.SecondsPerMinute - 1) / timeutil.SecondsPerMinute
			value := 0.25
			switch {
			case lateMinutes > 60:
				value = 1.0
			case lateMinutes > 30:
				value = 0.5
			}
			latePenalty = attendance.Penalty{
				Type:    attendance.PenaltyLateArrival,
				Value:   value,
				Minutes: lateMinutes,
			}
		}
	}

	absent := !isExcused && in.CheckInSeconds == nil && in.CheckOutSeconds == nil
	if absent {
		out.Status = attendance.StatusAbsent
	}

	out.MissingCheckout = in.CheckInSeconds != nil && in.CheckOutSeconds == nil && !isExcused
	out.EarlyLeaveTriggered = in.CheckOutSeconds != nil &&
		*in.CheckOutSeconds < in.EffectiveShiftEndSeconds-graceSeconds &&
		!isExcused && !out.MissingCheckout

	if isExcused {
		out.Status = attendance.StatusExcused
		// A mission running through the end of the shift counts as a full
		// worked day.
		if in.MissionEndSeconds != nil && *in.MissionEndSeconds >= in.DefaultShiftEndSeconds {
			out.Status = attendance.StatusPresent
		}
		return out
	}

	if latePenalty.Type != "" {
		out.Penalties = append(out.Penalties, latePenalty)
	}
	switch {
	case absent:
		out.Penalties = append(out.Penalties, attendance.Penalty{Type: attendance.PenaltyAbsence, Value: 1.0})
	case out.MissingCheckout:
		out.Penalties = append(out.Penalties, attendance.Penalty{Type: attendance.PenaltyMissingStamp, Value: 0.5})
	case out.EarlyLeaveTriggered:
		out.Penalties = append(out.Penalties, attendance.Penalty{Type: attendance.PenaltyEarlyLeave, Value: 0.5})
	}

	return out
}
