package controllers

import (
	"log"
	"net/http"

	"therapydesk-backend/analytics"
	"therapydesk-backend/cosmic"
	"therapydesk-backend/models"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type DashboardController struct {
	Store *cosmic.Client
}

func NewDashboardController(store *cosmic.Client) *DashboardController {
	return &DashboardController{Store: store}
}

// DashboardOverview is the payload behind the main dashboard page: summary
// stats, the five most recent appointments and the revenue chart series.
type DashboardOverview struct {
	Stats              models.DashboardStats   `json:"stats"`
	RecentAppointments []models.Appointment    `json:"recentAppointments"`
	RevenueByMonth     []models.MonthlyRevenue `json:"revenueByMonth"`
}

// GetDashboardOverview fetches the full appointment and payment snapshots
// concurrently and reduces them into the overview. Each request runs its own
// fetch-and-aggregate cycle; nothing is cached between requests.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	var (
		appointments []models.Appointment
		payments     []models.Payment
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		appointments, err = dc.Store.GetAppointments(ctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = dc.Store.GetPayments(ctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("Failed to fetch dashboard data: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load dashboard data")
		return
	}

	// Appointments arrive newest first from the store.
	recent := appointments
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, DashboardOverview{
		Stats:              analytics.CalculateStats(appointments, payments),
		RecentAppointments: recent,
		RevenueByMonth:     analytics.MonthlyRevenue(payments),
	})
}
