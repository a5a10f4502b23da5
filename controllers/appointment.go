package controllers

import (
	"log"
	"net/http"

	"therapydesk-backend/cosmic"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Store *cosmic.Client
}

func NewAppointmentController(store *cosmic.Client) *AppointmentController {
	return &AppointmentController{Store: store}
}

// CreateAppointmentInput defines the expected JSON structure for booking an appointment
type CreateAppointmentInput struct {
	ClientName      string   `json:"clientName" binding:"required"`
	ClientEmail     string   `json:"clientEmail"`
	ClientPhone     string   `json:"clientPhone"`
	Therapist       string   `json:"therapist"` // therapist object id
	AppointmentDate string   `json:"appointmentDate" binding:"required"`
	AppointmentTime string   `json:"appointmentTime" binding:"required"`
	Duration        *int     `json:"duration"`
	SessionType     string   `json:"sessionType" binding:"required,oneof=individual couple family group"`
	PaymentAmount   *float64 `json:"paymentAmount"`
	Notes           string   `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating an appointment
type UpdateAppointmentInput struct {
	ClientName         *string  `json:"clientName"`
	ClientEmail        *string  `json:"clientEmail"`
	ClientPhone        *string  `json:"clientPhone"`
	Therapist          *string  `json:"therapist"`
	AppointmentDate    *string  `json:"appointmentDate"`
	AppointmentTime    *string  `json:"appointmentTime"`
	Duration           *int     `json:"duration"`
	SessionType        *string  `json:"sessionType" binding:"omitempty,oneof=individual couple family group"`
	Status             *string  `json:"status" binding:"omitempty,oneof=scheduled confirmed in-progress completed cancelled no-show"`
	PaymentStatus      *string  `json:"paymentStatus" binding:"omitempty,oneof=pending paid overdue refunded cancelled"`
	PaymentAmount      *float64 `json:"paymentAmount"`
	Notes              *string  `json:"notes"`
	CancellationReason *string  `json:"cancellationReason"`
}

// GetAppointments lists appointments, optionally filtered by status, therapist
// and date range. The store returns them newest first.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	filter := cosmic.AppointmentFilter{
		Status:    c.Query("status"),
		Therapist: c.Query("therapist"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
	}

	appointments, err := ac.Store.GetAppointments(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Failed to fetch appointments: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment books a new appointment
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ClientEmail != "" && !utils.ValidateEmail(input.ClientEmail) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if input.ClientPhone != "" && !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	metadata := map[string]interface{}{
		"client_name":      input.ClientName,
		"appointment_date": input.AppointmentDate,
		"appointment_time": input.AppointmentTime,
		"session_type":     input.SessionType,
	}
	if input.ClientEmail != "" {
		metadata["client_email"] = input.ClientEmail
	}
	if input.ClientPhone != "" {
		metadata["client_phone"] = input.ClientPhone
	}
	if input.Therapist != "" {
		metadata["therapist"] = input.Therapist
	}
	if input.Duration != nil {
		metadata["duration"] = *input.Duration
	}
	if input.PaymentAmount != nil {
		metadata["payment_amount"] = *input.PaymentAmount
	}
	if input.Notes != "" {
		metadata["notes"] = input.Notes
	}

	title := utils.AppointmentTitle(input.ClientName, input.AppointmentDate, input.AppointmentTime)
	appointment, err := ac.Store.CreateAppointment(c.Request.Context(), title, metadata)
	if err != nil {
		log.Printf("Failed to create appointment: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment patches the supplied fields of an existing appointment
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	metadata := map[string]interface{}{}
	if input.ClientName != nil {
		metadata["client_name"] = *input.ClientName
	}
	if input.ClientEmail != nil {
		if *input.ClientEmail != "" && !utils.ValidateEmail(*input.ClientEmail) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		metadata["client_email"] = *input.ClientEmail
	}
	if input.ClientPhone != nil {
		if *input.ClientPhone != "" && !utils.ValidatePhone(*input.ClientPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		metadata["client_phone"] = *input.ClientPhone
	}
	if input.Therapist != nil {
		metadata["therapist"] = *input.Therapist
	}
	if input.AppointmentDate != nil {
		metadata["appointment_date"] = *input.AppointmentDate
	}
	if input.AppointmentTime != nil {
		metadata["appointment_time"] = *input.AppointmentTime
	}
	if input.Duration != nil {
		metadata["duration"] = *input.Duration
	}
	if input.SessionType != nil {
		metadata["session_type"] = *input.SessionType
	}
	if input.Status != nil {
		metadata["status"] = *input.Status
	}
	if input.PaymentStatus != nil {
		metadata["payment_status"] = *input.PaymentStatus
	}
	if input.PaymentAmount != nil {
		metadata["payment_amount"] = *input.PaymentAmount
	}
	if input.Notes != nil {
		metadata["notes"] = *input.Notes
	}
	if input.CancellationReason != nil {
		metadata["cancellation_reason"] = *input.CancellationReason
	}

	if len(metadata) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	appointment, err := ac.Store.UpdateAppointment(c.Request.Context(), id, "", metadata)
	if err != nil {
		log.Printf("Failed to update appointment %s: %v", id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment from the store
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	if err := ac.Store.DeleteAppointment(c.Request.Context(), id); err != nil {
		log.Printf("Failed to delete appointment %s: %v", id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
