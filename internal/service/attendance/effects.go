package attendance

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/timeutil"
)

// adjustmentEffects is the folded outcome of all same-day adjustments: the
// shifted shift envelope, the accumulated mission window and the excuse
// flags, plus the first/last stamp used for total-hours so a mission extends
// the worked span even without a punch.
type adjustmentEffects struct {
	EffectiveShiftStartSeconds int
	EffectiveShiftEndSeconds   int
	MissionStartSeconds        *int
	MissionEndSeconds          *int
	SuppressPenalties          bool
	HalfDayExcused             bool
	FirstStampSeconds          *int
	LastStampSeconds           *int
}

// computeAdjustmentEffects applies each adjustment independently and
// combines the results. Same-type adjustments compound (two morning
// permissions both push the start). A half-day leave matching neither shift
// boundary has no effect.
func computeAdjustmentEffects(
	shiftStart, shiftEnd string,
	adjustments []adjustment.Adjustment,
	checkInSeconds, checkOutSeconds *int,
) (adjustmentEffects, error) {
	shiftStartSeconds, err := timeutil.ToSeconds(shiftStart)
	if err != nil {
		return adjustmentEffects{}, err
	}
	shiftEndSeconds, err := timeutil.ToSeconds(shiftEnd)
	if err != nil {
		return adjustmentEffects{}, err
	}

	effects := adjustmentEffects{
		EffectiveShiftStartSeconds: shiftStartSeconds,
		EffectiveShiftEndSeconds:   shiftEndSeconds,
	}

	for _, adj := range adjustments {
		fromSeconds, err := timeutil.ToSeconds(adj.FromTime)
		if err != nil {
			return adjustmentEffects{}, err
		}
		toSeconds, err := timeutil.ToSeconds(adj.ToTime)
		if err != nil {
			return adjustmentEffects{}, err
		}

		switch adj.Type {
		case adjustment.TypeMorningPermission:
			effects.EffectiveShiftStartSeconds += max(0, toSeconds-fromSeconds)
		case adjustment.TypeEveningPermission:
			effects.EffectiveShiftEndSeconds -= max(0, toSeconds-fromSeconds)
		case adjustment.TypeHalfDayLeave:
			if fromSeconds == shiftStartSeconds {
				effects.EffectiveShiftStartSeconds = toSeconds
				effects.HalfDayExcused = true
			}
			if toSeconds == shiftEndSeconds {
				effects.EffectiveShiftEndSeconds = fromSeconds
				effects.HalfDayExcused = true
			}
		case adjustment.TypeBusinessTrip:
			effects.MissionStartSeconds = minOptional(effects.MissionStartSeconds, fromSeconds)
			effects.MissionEndSeconds = maxOptional(effects.MissionEndSeconds, toSeconds)
			effects.SuppressPenalties = true
		}
	}

	effects.FirstStampSeconds = pickOptional(checkInSeconds, effects.MissionStartSeconds, func(a, b int) bool { return a < b })
	effects.LastStampSeconds = pickOptional(checkOutSeconds, effects.MissionEndSeconds, func(a, b int) bool { return a > b })

	return effects, nil
}

func minOptional(current *int, candidate int) *int {
	if current == nil || candidate < *current {
		return &candidate
	}
	return current
}

func maxOptional(current *int, candidate int) *int {
	if current == nil || candidate > *current {
		return &candidate
	}
	return current
}

// pickOptional returns whichever of a and b wins under better, ignoring nil
// operands.
func pickOptional(a, b *int, better func(a, b int) bool) *int {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if better(*a, *b) {
		v := *a
		return &v
	}
	v := *b
	return &v
}
