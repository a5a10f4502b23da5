package analytics

import (
	"math"

	"therapydesk-backend/models"
)

// PercentageChange compares a metric against its previous-period value.
// A zero previous value always yields {0, true}, even when current is nonzero;
// the division is undefined and the dashboard treats the metric as flat rather
// than infinite growth. Equal values count as positive.
func PercentageChange(current, previous float64) models.PercentChange {
	if previous == 0 {
		return models.PercentChange{Value: 0, IsPositive: true}
	}
	change := (current - previous) / previous * 100
	return models.PercentChange{
		Value:      math.Abs(change),
		IsPositive: change >= 0,
	}
}
