package cosmic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"therapydesk-backend/models"

	"github.com/google/uuid"
)

// AppointmentFilter is the closed set of query constraints the appointments
// list supports. The date range is applied only when both bounds are set.
type AppointmentFilter struct {
	Status    string
	Therapist string // therapist object id
	DateFrom  string // yyyy-MM-dd
	DateTo    string // yyyy-MM-dd
}

// PaymentFilter is the closed set of query constraints for payments.
type PaymentFilter struct {
	Status   string
	DateFrom string // yyyy-MM-dd
	DateTo   string // yyyy-MM-dd
}

// GetAppointments returns appointments matching the filter, newest first by
// appointment date. Zero matches yield an empty slice, not an error.
func (c *Client) GetAppointments(ctx context.Context, filter *AppointmentFilter) ([]models.Appointment, error) {
	query := map[string]interface{}{"type": "appointments"}
	if filter != nil {
		if filter.Status != "" {
			query["metadata.status"] = filter.Status
		}
		if filter.Therapist != "" {
			query["metadata.therapist"] = filter.Therapist
		}
		if filter.DateFrom != "" && filter.DateTo != "" {
			query["metadata.appointment_date"] = map[string]interface{}{
				"$gte": filter.DateFrom,
				"$lte": filter.DateTo,
			}
		}
	}

	appointments, err := find[models.Appointment](ctx, c, query, "-metadata.appointment_date")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return appointments, nil
}

// GetPayments returns payments matching the filter, newest first by payment date.
func (c *Client) GetPayments(ctx context.Context, filter *PaymentFilter) ([]models.Payment, error) {
	query := map[string]interface{}{"type": "payments"}
	if filter != nil {
		if filter.Status != "" {
			query["metadata.status"] = filter.Status
		}
		if filter.DateFrom != "" && filter.DateTo != "" {
			query["metadata.payment_date"] = map[string]interface{}{
				"$gte": filter.DateFrom,
				"$lte": filter.DateTo,
			}
		}
	}

	payments, err := find[models.Payment](ctx, c, query, "-metadata.payment_date")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	return payments, nil
}

// GetTherapists returns all therapists ordered by first name.
func (c *Client) GetTherapists(ctx context.Context) ([]models.Therapist, error) {
	therapists, err := find[models.Therapist](ctx, c, map[string]interface{}{"type": "therapists"}, "metadata.first_name")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapists: %w", err)
	}
	return therapists, nil
}

// GetClients returns all clients ordered by last name. Pass a status to limit
// the list to active, inactive, or archived clients.
func (c *Client) GetClients(ctx context.Context, status string) ([]models.Client, error) {
	query := map[string]interface{}{"type": "clients"}
	if status != "" {
		query["metadata.status"] = status
	}

	clients, err := find[models.Client](ctx, c, query, "metadata.last_name")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, nil
}

// GetUserByEmail returns the dashboard user with the given email, or nil when
// no such user exists.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := find[models.User](ctx, c, map[string]interface{}{
		"type":           "users",
		"metadata.email": email,
	}, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// CreateUser inserts a dashboard user object.
func (c *Client) CreateUser(ctx context.Context, title string, metadata map[string]interface{}) (*models.User, error) {
	raw, err := c.insertObject(ctx, map[string]interface{}{
		"type":     "users",
		"title":    title,
		"slug":     slugFor(title),
		"metadata": metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// CreateAppointment inserts an appointment with the store defaults applied:
// status scheduled, payment pending, 60 minute duration. Caller-supplied
// metadata overrides the defaults.
func (c *Client) CreateAppointment(ctx context.Context, title string, metadata map[string]interface{}) (*models.Appointment, error) {
	merged := map[string]interface{}{
		"status":         models.AppointmentStatusScheduled,
		"payment_status": models.PaymentStatusPending,
		"duration":       60,
	}
	for k, v := range metadata {
		merged[k] = v
	}

	raw, err := c.insertObject(ctx, map[string]interface{}{
		"type":     "appointments",
		"title":    title,
		"slug":     slugFor(title),
		"metadata": merged,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	var appointment models.Appointment
	if err := json.Unmarshal(raw, &appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

// UpdateAppointment patches an appointment's title and/or metadata fields.
// Only the supplied metadata keys are changed.
func (c *Client) UpdateAppointment(ctx context.Context, id, title string, metadata map[string]interface{}) (*models.Appointment, error) {
	payload := map[string]interface{}{}
	if title != "" {
		payload["title"] = title
	}
	if len(metadata) > 0 {
		payload["metadata"] = metadata
	}

	raw, err := c.patchObject(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	var appointment models.Appointment
	if err := json.Unmarshal(raw, &appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &appointment, nil
}

// DeleteAppointment removes an appointment from the store.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	if err := c.deleteObject(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

// slugFor derives a unique store slug from an object title. The store rejects
// duplicate slugs, so a short random suffix keeps repeat titles insertable.
func slugFor(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	suffix := uuid.NewString()[:8]
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
