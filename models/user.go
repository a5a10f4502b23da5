package models

// User is a dashboard login, stored as a "users" object in the content store
// so the store stays the single source of truth for every record type.
type User struct {
	Object
	Metadata UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"` // 'admin' or 'staff'
	Active       bool   `json:"active"`
	LastLogin    string `json:"last_login,omitempty"`
}
