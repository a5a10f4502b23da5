package models

// Appointment lifecycle statuses
const (
	AppointmentStatusScheduled  = "scheduled"
	AppointmentStatusConfirmed  = "confirmed"
	AppointmentStatusInProgress = "in-progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
	AppointmentStatusNoShow     = "no-show"
)

type Appointment struct {
	Object
	Metadata AppointmentMetadata `json:"metadata"`
}

type AppointmentMetadata struct {
	ClientName         string        `json:"client_name"`
	ClientEmail        string        `json:"client_email,omitempty"`
	ClientPhone        string        `json:"client_phone,omitempty"`
	Therapist          *TherapistRef `json:"therapist,omitempty"`
	AppointmentDate    string        `json:"appointment_date"` // yyyy-MM-dd
	AppointmentTime    string        `json:"appointment_time"` // HH:mm
	Duration           int           `json:"duration,omitempty"` // in minutes
	Status             string        `json:"status"`
	SessionType        string        `json:"session_type,omitempty"` // individual, couple, family, group
	PaymentStatus      string        `json:"payment_status"`
	PaymentAmount      float64       `json:"payment_amount,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	Recurring          bool          `json:"recurring,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
}
