// utils/format.go
package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// FormatDate renders a yyyy-MM-dd date string with the given layout.
// Unparseable input degrades to a literal fallback instead of an error.
func FormatDate(date string, layout string) string {
	value := date
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return "Invalid date"
	}
	return t.Format(layout)
}

// FormatTime renders an HH:mm time as a 12-hour clock string. Anything that
// does not parse comes back unchanged.
func FormatTime(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}

// FormatCurrency renders a USD amount for display.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// AppointmentTitle builds the display title for a new appointment record,
// e.g. "Jane Doe - Mar 5 at 3:00 PM".
func AppointmentTitle(clientName, date, timeOfDay string) string {
	return fmt.Sprintf("%s - %s at %s", clientName, FormatDate(date, "Jan 2"), FormatTime(timeOfDay))
}
