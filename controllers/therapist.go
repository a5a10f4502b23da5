package controllers

import (
	"log"
	"net/http"

	"therapydesk-backend/cosmic"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type TherapistController struct {
	Store *cosmic.Client
}

func NewTherapistController(store *cosmic.Client) *TherapistController {
	return &TherapistController{Store: store}
}

// GetTherapists lists all therapists, ordered by first name
func (tc *TherapistController) GetTherapists(c *gin.Context) {
	therapists, err := tc.Store.GetTherapists(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch therapists: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load therapists")
		return
	}

	c.JSON(http.StatusOK, therapists)
}
