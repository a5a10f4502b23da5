package controllers

import (
	"log"
	"net/http"

	"therapydesk-backend/cosmic"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Store *cosmic.Client
}

func NewPaymentController(store *cosmic.Client) *PaymentController {
	return &PaymentController{Store: store}
}

// GetPayments lists payments, optionally filtered by status and date range.
// The store returns them newest first.
func (pc *PaymentController) GetPayments(c *gin.Context) {
	filter := cosmic.PaymentFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	}

	payments, err := pc.Store.GetPayments(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Failed to fetch payments: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
