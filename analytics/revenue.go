package analytics

import (
	"time"

	"therapydesk-backend/models"
	"therapydesk-backend/utils"
)

// chartMonths is how many calendar months the revenue chart covers, the
// current month included.
const chartMonths = 6

// MonthlyRevenue buckets paid payments into the last six calendar months,
// oldest first, for the revenue chart.
func MonthlyRevenue(payments []models.Payment) []models.MonthlyRevenue {
	return MonthlyRevenueAt(payments, time.Now())
}

// MonthlyRevenueAt is MonthlyRevenue with an injected clock.
//
// An empty payment list returns an empty series so the chart can show its
// empty state; a non-empty list always produces six buckets, zero-valued
// months included. The two cases are deliberately distinct.
func MonthlyRevenueAt(payments []models.Payment, now time.Time) []models.MonthlyRevenue {
	if len(payments) == 0 {
		return nil
	}

	firstMonth := utils.MonthStart(now).AddDate(0, -(chartMonths - 1), 0)

	buckets := make([]models.MonthlyRevenue, 0, chartMonths)
	for i := 0; i < chartMonths; i++ {
		month := firstMonth.AddDate(0, i, 0)
		bucket := models.MonthlyRevenue{
			Month: month.Format("Jan 2006"),
		}

		for _, p := range payments {
			if p.Metadata.Status != models.PaymentStatusPaid {
				continue
			}
			paid, ok := parseDay(p.Metadata.PaymentDate)
			if !ok {
				continue
			}
			if paid.Year() == month.Year() && paid.Month() == month.Month() {
				bucket.Revenue += p.Metadata.Amount
				bucket.Appointments++
			}
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

// parseDay reads the calendar-date part of a payment date, tolerating a
// trailing time component. Unparseable dates are skipped by the caller.
func parseDay(value string) (time.Time, bool) {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
