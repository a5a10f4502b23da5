package models

// Client statuses
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusArchived = "archived"
)

type Client struct {
	Object
	Metadata ClientMetadata `json:"metadata"`
}

type ClientMetadata struct {
	FirstName          string        `json:"first_name"`
	LastName           string        `json:"last_name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone,omitempty"`
	DateOfBirth        string        `json:"date_of_birth,omitempty"`
	EmergencyContact   string        `json:"emergency_contact,omitempty"`
	EmergencyPhone     string        `json:"emergency_phone,omitempty"`
	InsuranceProvider  string        `json:"insurance_provider,omitempty"`
	InsuranceID        string        `json:"insurance_id,omitempty"`
	PreferredTherapist *TherapistRef `json:"preferred_therapist,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	Status             string        `json:"status"`
}
