package analytics

import (
	"time"

	"therapydesk-backend/models"
	"therapydesk-backend/utils"
)

// DateRanges returns the four analytics period presets, recomputed against
// the current wall clock on every call.
func DateRanges() []models.DateRange {
	return DateRangesAt(time.Now())
}

// DateRangesAt is DateRanges with an injected clock. The order is fixed and
// both bounds are inclusive calendar dates.
func DateRangesAt(now time.Time) []models.DateRange {
	today := now.Format(dateLayout)

	return []models.DateRange{
		{
			Label:     "Today",
			StartDate: today,
			EndDate:   today,
		},
		{
			Label:     "Last 7 days",
			StartDate: now.AddDate(0, 0, -6).Format(dateLayout),
			EndDate:   today,
		},
		{
			Label:     "Last 30 days",
			StartDate: now.AddDate(0, 0, -29).Format(dateLayout),
			EndDate:   today,
		},
		{
			Label:     "Last 3 months",
			StartDate: utils.SubMonths(now, 3).Format(dateLayout),
			EndDate:   today,
		},
	}
}
