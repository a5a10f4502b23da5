// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"therapydesk-backend/cosmic"
	"therapydesk-backend/models"
	"therapydesk-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type ReminderService struct {
	store  *cosmic.Client
	client *twilio.RestClient
}

func NewReminderService(store *cosmic.Client) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		store: store,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders texts every client with a scheduled or confirmed
// appointment tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	for _, status := range []string{models.AppointmentStatusScheduled, models.AppointmentStatusConfirmed} {
		appointments, err := s.store.GetAppointments(ctx, &cosmic.AppointmentFilter{
			Status:   status,
			DateFrom: tomorrow,
			DateTo:   tomorrow,
		})
		if err != nil {
			log.Printf("Failed to fetch %s appointments for %s: %v", status, tomorrow, err)
			continue
		}
		s.sendReminders(appointments)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminders(appointments []models.Appointment) {
	for _, appointment := range appointments {
		phone := appointment.Metadata.ClientPhone
		if phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Hi %s, this is a reminder of your therapy session on %s at %s. Reply to this message if you need to reschedule.",
			appointment.Metadata.ClientName,
			utils.FormatDate(appointment.Metadata.AppointmentDate, "Monday, Jan 2"),
			utils.FormatTime(appointment.Metadata.AppointmentTime),
		)

		// Determine channel (WhatsApp if available, else SMS)
		channel := "sms"
		var to string

		// Use WhatsApp if phone is in E.164 format and starts with '+'
		if strings.HasPrefix(phone, "+") {
			to = "whatsapp:" + phone
			channel = "whatsapp"
		} else {
			to = phone
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)

		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", phone, err)
		} else if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", phone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", phone)
		}
	}
}
