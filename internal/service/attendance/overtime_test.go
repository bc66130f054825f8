package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOvertimeHours(t *testing.T) {
	shiftEnd := 17 * 3600

	tests := []struct {
		name     string
		checkOut *int
		want     int
	}{
		{"no checkout", nil, 0},
		{"left at shift end", intp(17 * 3600), 0},
		{"inside the unpaid buffer hour", intp(17*3600 + 59*60), 0},
		{"one minute short of the first hour", intp(18*3600 + 59*60), 0},
		{"exactly one overtime hour", intp(19 * 3600), 1},
		{"partial second hour floors to one", intp(20*3600 + 30*60), 2},
		{"checkout at 02:00 next day", intp(26 * 3600), 8},
		{"checkout at 08:00 next day", intp(32 * 3600), 14},
		{"checkout at 09:00 next day", intp(33 * 3600), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overtimeHours(shiftEnd, tt.checkOut))
		})
	}
}
