package domain

import "time"

// Entry represents a single journal entry.
// The ID is assigned by the database (SERIAL) and is immutable once created.
// UpdatedAt equals CreatedAt on a freshly created entry and is refreshed on
// every successful update.
type Entry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
