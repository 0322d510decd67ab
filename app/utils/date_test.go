package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicYear(t *testing.T) {
	may := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	december := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2025, AcademicYear(may), "May still belongs to the previous intake")
	assert.Equal(t, 2026, AcademicYear(june))
	assert.Equal(t, 2026, AcademicYear(december))
}

func TestFormatClock(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"09:05": "9:05 AM",
		"12:00": "12:00 PM",
		"14:30": "2:30 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatClock(in))
	}
}

func TestFormatClock_InvalidInputUnchanged(t *testing.T) {
	assert.Equal(t, "not-a-time", FormatClock("not-a-time"))
	assert.Equal(t, "25:00", FormatClock("25:00"))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("18:45")
	assert.NoError(t, err)
	assert.Equal(t, 18, h)
	assert.Equal(t, 45, m)

	_, _, err = ParseClock("18")
	assert.Error(t, err)
}
