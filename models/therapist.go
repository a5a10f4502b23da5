package models

import "encoding/json"

// Therapist statuses
const (
	TherapistStatusActive   = "active"
	TherapistStatusInactive = "inactive"
	TherapistStatusOnLeave  = "on-leave"
)

type Therapist struct {
	Object
	Metadata TherapistMetadata `json:"metadata"`
}

type TherapistMetadata struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	LicenseNumber   string   `json:"license_number,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	RatePerSession  float64  `json:"rate_per_session,omitempty"`
	Status          string   `json:"status"`
}

// TherapistRef is a reference field to a therapist record. The store returns
// it as a bare object id, or as the full expanded record when the query was
// made with depth 1.
type TherapistRef struct {
	Therapist
}

func (r *TherapistRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		r.ID = id
		return nil
	}
	return json.Unmarshal(data, &r.Therapist)
}

func (r TherapistRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Therapist)
}
