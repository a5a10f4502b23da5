package models

// Object is the common envelope shared by every record in the content store.
// Each record type keeps its own fields in a typed Metadata struct.
type Object struct {
	ID         string `json:"id"`
	Slug       string `json:"slug,omitempty"`
	Title      string `json:"title"`
	Type       string `json:"type,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}
