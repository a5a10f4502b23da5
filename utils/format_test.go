package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 5", FormatDate("2025-03-05", "Jan 2"))
	assert.Equal(t, "March 5, 2025", FormatDate("2025-03-05", "January 2, 2006"))
	// A trailing time component is tolerated.
	assert.Equal(t, "Mar 5", FormatDate("2025-03-05T14:00:00Z", "Jan 2"))
	// Unparseable input degrades to the literal fallback, never an error.
	assert.Equal(t, "Invalid date", FormatDate("yesterday", "Jan 2"))
	assert.Equal(t, "Invalid date", FormatDate("", "Jan 2"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2:30 PM", FormatTime("14:30"))
	assert.Equal(t, "9:05 AM", FormatTime("09:05"))
	assert.Equal(t, "12:00 AM", FormatTime("00:00"))
	// Anything unparseable comes back unchanged.
	assert.Equal(t, "half past two", FormatTime("half past two"))
	assert.Equal(t, "", FormatTime(""))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$0.00", FormatCurrency(0))
}

func TestAppointmentTitle(t *testing.T) {
	assert.Equal(t, "Jane Doe - Mar 5 at 3:00 PM", AppointmentTitle("Jane Doe", "2025-03-05", "15:00"))
}
