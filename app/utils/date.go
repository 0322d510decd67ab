package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AcademicYear returns the academic year containing t. The academy's year
// starts in June, so January through May belong to the previous year's
// intake.
func AcademicYear(t time.Time) int {
	if t.Month() < time.June {
		return t.Year() - 1
	}
	return t.Year()
}

// ParseClock parses an "HH:MM" 24-hour string.
func ParseClock(s string) (hours, minutes int, err error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid time string %q, expected HH:MM", s)
	}
	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time string %q, expected HH:MM", s)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time string %q, expected HH:MM", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return hours, minutes, nil
}

// FormatClock renders an "HH:MM" 24-hour string as a friendly 12-hour time,
// e.g. "14:30" -> "2:30 PM". Invalid input comes back unchanged.
func FormatClock(s string) string {
	hours, minutes, err := ParseClock(s)
	if err != nil {
		return s
	}
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	h := hours % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minutes, period)
}
