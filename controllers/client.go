package controllers

import (
	"log"
	"net/http"

	"therapydesk-backend/cosmic"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	Store *cosmic.Client
}

func NewClientController(store *cosmic.Client) *ClientController {
	return &ClientController{Store: store}
}

// GetClients lists clients ordered by last name, optionally filtered by status.
func (cc *ClientController) GetClients(c *gin.Context) {
	clients, err := cc.Store.GetClients(c.Request.Context(), c.Query("status"))
	if err != nil {
		log.Printf("Failed to fetch clients: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}
