package attendance

import (
	"testing"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseClassifyInput() classifyInput {
	return classifyInput{
		EffectiveShiftStartSeconds: 9 * 3600,
		EffectiveShiftEndSeconds:   17 * 3600,
		DefaultShiftEndSeconds:     17 * 3600,
	}
}

func TestClassifyDay_LateTiers(t *testing.T) {
	tests := []struct {
		name        string
		checkIn     int
		wantStatus  string
		wantValue   float64
		wantMinutes int
	}{
		{"on time", 9 * 3600, attendance.StatusPresent, 0, 0},
		{"inside grace", 9*3600 + 15*60, attendance.StatusPresent, 0, 0},
		{"one second past grace rounds up to 16 minutes", 9*3600 + 15*60 + 1, attendance.StatusLate, 0.25, 16},
		{"thirty minutes late", 9*3600 + 30*60, attendance.StatusLate, 0.25, 30},
		{"thirty-one minutes late", 9*3600 + 31*60, attendance.StatusLate, 0.5, 31},
		{"sixty minutes late", 9*3600 + 60*60, attendance.StatusLate, 0.5, 60},
		{"sixty-one minutes late", 9*3600 + 61*60, attendance.StatusLate, 1.0, 61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseClassifyInput()
			in.CheckInSeconds = intp(tt.checkIn)
			in.CheckOutSeconds = intp(17 * 3600)

			got := classifyDay(in)
			assert.Equal(t, tt.wantStatus, got.Status)
			if tt.wantValue == 0 {
				assert.Empty(t, got.Penalties)
				return
			}
			require.Len(t, got.Penalties, 1)
			assert.Equal(t, attendance.PenaltyLateArrival, got.Penalties[0].Type)
			assert.Equal(t, tt.wantValue, got.Penalties[0].Value)
			assert.Equal(t, tt.wantMinutes, got.Penalties[0].Minutes)
		})
	}
}

func TestClassifyDay_AbsenceAndStamps(t *testing.T) {
	t.Run("no punches means absent with a full-day penalty", func(t *testing.T) {
		got := classifyDay(baseClassifyInput())
		assert.Equal(t, attendance.StatusAbsent, got.Status)
		require.Len(t, got.Penalties, 1)
		assert.Equal(t, attendance.PenaltyAbsence, got.Penalties[0].Type)
		assert.Equal(t, 1.0, got.Penalties[0].Value)
	})

	t.Run("check-in without checkout is a missing stamp, not early leave", func(t *testing.T) {
		in := baseClassifyInput()
		in.CheckInSeconds = intp(9 * 3600)

		got := classifyDay(in)
		assert.Equal(t, attendance.StatusPresent, got.Status)
		assert.True(t, got.MissingCheckout)
		assert.False(t, got.EarlyLeaveTriggered)
		require.Len(t, got.Penalties, 1)
		assert.Equal(t, attendance.PenaltyMissingStamp, got.Penalties[0].Type)
		assert.Equal(t, 0.5, got.Penalties[0].Value)
	})

	t.Run("checkout before effective end minus grace is early leave", func(t *testing.T) {
		in := baseClassifyInput()
		in.CheckInSeconds = intp(9 * 3600)
		in.CheckOutSeconds = intp(16*3600 + 30*60)

		got := classifyDay(in)
		assert.True(t, got.EarlyLeaveTriggered)
		require.Len(t, got.Penalties, 1)
		assert.Equal(t, attendance.PenaltyEarlyLeave, got.Penalties[0].Type)
		assert.Equal(t, 0.5, got.Penalties[0].Value)
	})

	t.Run("checkout inside the grace window is fine", func(t *testing.T) {
		in := baseClassifyInput()
		in.CheckInSeconds = intp(9 * 3600)
		in.CheckOutSeconds = intp(17*3600 - 15*60)

		got := classifyDay(in)
		assert.False(t, got.EarlyLeaveTriggered)
		assert.Empty(t, got.Penalties)
	})

	t.Run("late arrival stacks with missing checkout to 0.75 total", func(t *testing.T) {
		in := baseClassifyInput()
		in.CheckInSeconds = intp(9*3600 + 20*60)

		got := classifyDay(in)
		require.Len(t, got.Penalties, 2)
		total := got.Penalties[0].Value + got.Penalties[1].Value
		assert.Equal(t, 0.75, total)
	})

	t.Run("late arrival stacks with early leave", func(t *testing.T) {
		in := baseClassifyInput()
		in.CheckInSeconds = intp(9*3600 + 45*60)
		in.CheckOutSeconds = intp(15 * 3600)

		got := classifyDay(in)
		assert.Equal(t, attendance.StatusLate, got.Status)
		require.Len(t, got.Penalties, 2)
		assert.Equal(t, attendance.PenaltyLateArrival, got.Penalties[0].Type)
		assert.Equal(t, attendance.PenaltyEarlyLeave, got.Penalties[1].Type)
	})
}

func TestClassifyDay_Excused(t *testing.T) {
	t.Run("half-day leave with no punches is excused without penalties", func(t *testing.T) {
		in := baseClassifyInput()
		in.HalfDayExcused = true

		got := classifyDay(in)
		assert.Equal(t, attendance.StatusExcused, got.Status)
		assert.Empty(t, got.Penalties)
	})

	t.Run("half-day leave with a punch is judged normally", func(t *testing.T) {
		in := baseClassifyInput()
		in.HalfDayExcused = true
		in.EffectiveShiftStartSeconds = 13 * 3600
		in.CheckInSeconds = intp(13*3600 + 40*60)
		in.CheckOutSeconds = intp(17 * 3600)

		got := classifyDay(in)
		assert.Equal(t, attendance.StatusLate, got.Status)
		require.Len(t, got.Penalties, 1)
		assert.Equal(t, attendance.PenaltyLateArrival, got.Penalties[0].Type)
	})

	t.Run("mission ending before shift end stays excused", func(t *testing.T) {
		in := baseClassifyInput()
		in.SuppressPenalties = true
		in.MissionStartSeconds = intp(10 * 3600)
		in.MissionEndSeconds = intp(14 * 3600)

		got := classifyDay(in)
		assert.Equal(t, attendance.StatusExcused, got.Status)
		assert.Empty(t, got.Penalties)
	})

	t.Run("mission covering shift end counts as a present day", func(t *testing.T) {
		in := baseClassifyInput()
		in.SuppressPenalties = true
		in.MissionStartSeconds = intp(10 * 3600)
		in.MissionEndSeconds = intp(17 * 3600)

		got := classifyDay(in)
		assert.Equal(t, attendance.StatusPresent, got.Status)
		assert.Empty(t, got.Penalties)
	})

	t.Run("mission suppresses lateness entirely", func(t *testing.T) {
		in := baseClassifyInput()
		in.SuppressPenalties = true
		in.MissionStartSeconds = intp(11 * 3600)
		in.MissionEndSeconds = intp(13 * 3600)
		in.CheckInSeconds = intp(10 * 3600)
		in.CheckOutSeconds = intp(17 * 3600)

		got := classifyDay(in)
		assert.Empty(t, got.Penalties)
	})
}
