package attendance

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/timeutil"
)

// overtimeBufferSeconds is the unpaid hour beyond shift end before overtime
// starts counting.
const overtimeBufferSeconds = timeutil.SecondsPerHour

// overtimeHours credits whole completed hours worked past shift end plus the
// buffer. checkOutSeconds is elapsed seconds from local midnight and may
// exceed 86400 for an overnight checkout, so hours accumulate correctly
// across the day boundary.
func overtimeHours(shiftEndSeconds int, checkOutSeconds *int) int {
	if checkOutSeconds == nil {
		return 0
	}
	overtimeStart := shiftEndSeconds + overtimeBufferSeconds
	if *checkOutSeconds <= overtimeStart {
		return 0
	}
	eligibleMinutes := (*checkOutSeconds - overtimeStart) / timeutil.SecondsPerMinute
	return eligibleMinutes / 60
}
