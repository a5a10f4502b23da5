// controllers/report.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"therapydesk-backend/analytics"
	"therapydesk-backend/cosmic"
	"therapydesk-backend/models"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// ReportController handles the analytics reporting endpoints
type ReportController struct {
	Store *cosmic.Client
}

func NewReportController(store *cosmic.Client) *ReportController {
	return &ReportController{Store: store}
}

// PeriodSummary is one side of the period comparison.
type PeriodSummary struct {
	StartDate            string                `json:"startDate"`
	EndDate              string                `json:"endDate"`
	Stats                models.DashboardStats `json:"stats"`
	CompletionRate       float64               `json:"completionRate"`
	AvgRevenuePerSession float64               `json:"avgRevenuePerSession"`
}

// AnalyticsSummary contrasts the selected period against the immediately
// preceding period of equal length.
type AnalyticsSummary struct {
	Range               models.DateRange     `json:"range"`
	Current             PeriodSummary        `json:"current"`
	Previous            PeriodSummary        `json:"previous"`
	RevenueChange       models.PercentChange `json:"revenueChange"`
	AppointmentsChange  models.PercentChange `json:"appointmentsChange"`
	CompletedChange     models.PercentChange `json:"completedChange"`
	ActiveClientsChange models.PercentChange `json:"activeClientsChange"`
}

// GetDateRanges returns the four analytics period presets for the selector
func (rc *ReportController) GetDateRanges(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.DateRanges())
}

// GetReportAnalytics returns the period-over-period analytics summary for the
// requested preset range (default "Last 30 days").
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	label := c.DefaultQuery("range", "Last 30 days")

	var selected *models.DateRange
	for _, r := range analytics.DateRanges() {
		if r.Label == label {
			selected = &r
			break
		}
	}
	if selected == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown analytics range: "+label)
		return
	}

	previousStart, previousEnd, err := rc.previousPeriod(selected.StartDate, selected.EndDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute comparison period")
		return
	}

	var (
		currentAppointments, previousAppointments []models.Appointment
		currentPayments, previousPayments         []models.Payment
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		currentAppointments, err = rc.fetchAppointments(ctx, selected.StartDate, selected.EndDate)
		return err
	})
	g.Go(func() error {
		var err error
		currentPayments, err = rc.fetchPayments(ctx, selected.StartDate, selected.EndDate)
		return err
	})
	g.Go(func() error {
		var err error
		previousAppointments, err = rc.fetchAppointments(ctx, previousStart, previousEnd)
		return err
	})
	g.Go(func() error {
		var err error
		previousPayments, err = rc.fetchPayments(ctx, previousStart, previousEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("Failed to fetch analytics data: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load analytics data")
		return
	}

	currentStats := analytics.CalculateStats(currentAppointments, currentPayments)
	previousStats := analytics.CalculateStats(previousAppointments, previousPayments)

	summary := AnalyticsSummary{
		Range:    *selected,
		Current:  rc.summarize(selected.StartDate, selected.EndDate, currentStats),
		Previous: rc.summarize(previousStart, previousEnd, previousStats),
		RevenueChange: analytics.PercentageChange(
			currentStats.TotalRevenue, previousStats.TotalRevenue),
		AppointmentsChange: analytics.PercentageChange(
			float64(currentStats.TotalAppointments), float64(previousStats.TotalAppointments)),
		CompletedChange: analytics.PercentageChange(
			float64(currentStats.CompletedSessions), float64(previousStats.CompletedSessions)),
		ActiveClientsChange: analytics.PercentageChange(
			float64(currentStats.ActiveClients), float64(previousStats.ActiveClients)),
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) fetchAppointments(ctx context.Context, from, to string) ([]models.Appointment, error) {
	return rc.Store.GetAppointments(ctx, &cosmic.AppointmentFilter{DateFrom: from, DateTo: to})
}

func (rc *ReportController) fetchPayments(ctx context.Context, from, to string) ([]models.Payment, error) {
	return rc.Store.GetPayments(ctx, &cosmic.PaymentFilter{DateFrom: from, DateTo: to})
}

// previousPeriod returns the range of equal length ending the day before the
// given range starts.
func (rc *ReportController) previousPeriod(startDate, endDate string) (string, string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", "", err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return "", "", err
	}

	days := utils.DaysBetween(start, end)
	previousEnd := start.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -days)

	return previousStart.Format("2006-01-02"), previousEnd.Format("2006-01-02"), nil
}

func (rc *ReportController) summarize(startDate, endDate string, stats models.DashboardStats) PeriodSummary {
	summary := PeriodSummary{
		StartDate: startDate,
		EndDate:   endDate,
		Stats:     stats,
	}
	if stats.TotalAppointments > 0 {
		summary.CompletionRate = float64(stats.CompletedSessions) / float64(stats.TotalAppointments) * 100
	}
	if stats.CompletedSessions > 0 {
		summary.AvgRevenuePerSession = stats.TotalRevenue / float64(stats.CompletedSessions)
	}
	return summary
}
