package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00", "09:00:00"},
		{"9:5", "09:05:00"},
		{" 17:30:45 ", "17:30:45"},
		{"7", "07:00:00"},
	}
	for _, c := range cases {
		got, err := Normalize(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestNormalizeRejectsNonNumeric(t *testing.T) {
	for _, input := range []string{"ab:00", "09:xx", "09:00:zz"} {
		_, err := Normalize(input)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", input)
	}
}

func TestToSeconds(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 9 * 3600},
		{"17:00:30", 17*3600 + 30},
		{"9:5", 9*3600 + 5*60},
	}
	for _, c := range cases {
		got, err := ToSeconds(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestToSecondsInvalid(t *testing.T) {
	_, err := ToSeconds("not-a-time")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFromSeconds(t *testing.T) {
	assert.Equal(t, "00:00:00", FromSeconds(0))
	assert.Equal(t, "09:05:00", FromSeconds(9*3600+5*60))
	assert.Equal(t, "23:59:59", FromSeconds(24*3600-1))
}

func TestFromSecondsClampsNegative(t *testing.T) {
	assert.Equal(t, "00:00:00", FromSeconds(-5))
}
