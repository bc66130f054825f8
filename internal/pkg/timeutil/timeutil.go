// Package timeutil converts between wall-clock time strings ("HH:MM" or
// "HH:MM:SS") and day-second offsets. Biometric exports and adjustment sheets
// arrive with loosely formatted times ("9:5", "09:05:00"), so every public
// entry point normalizes first.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time string contains a non-numeric
// component.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM or HH:MM:SS")

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 24 * SecondsPerHour
)

// Normalize rewrites a loosely formatted time string as zero-padded
// "HH:MM:SS". Missing minute/second components default to zero.
func Normalize(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	components := [3]int{}
	for i := 0; i < 3; i++ {
		if i >= len(parts) || strings.TrimSpace(parts[i]) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
		}
		components[i] = n
	}
	return fmt.Sprintf("%02d:%02d:%02d", components[0], components[1], components[2]), nil
}

// ToSeconds parses "HH:MM" or "HH:MM:SS" into seconds since midnight.
func ToSeconds(value string) (int, error) {
	normalized, err := Normalize(value)
	if err != nil {
		return 0, err
	}
	parts := strings.Split(normalized, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	s, _ := strconv.Atoi(parts[2])
	return h*SecondsPerHour + m*SecondsPerMinute + s, nil
}

// FromSeconds formats a day-second offset as "HH:MM:SS". Negative input is
// clamped to zero so callers never see a negative time.
func FromSeconds(value int) string {
	if value < 0 {
		value = 0
	}
	h := value / SecondsPerHour
	m := (value % SecondsPerHour) / SecondsPerMinute
	s := value % SecondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
