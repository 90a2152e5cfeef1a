package dto

import (
	"time"

	"github.com/devanshg03/personal_journal_app/internal/core/domain"
)

// CreateEntryRequest defines the payload for creating an entry.
// Blank-after-trim and over-long titles are rejected by the service layer.
type CreateEntryRequest struct {
	Title   string `json:"title" binding:"required,notblank"`
	Content string `json:"content" binding:"required,notblank"`
}

// UpdateEntryRequest defines the payload for updating an entry.
// Both fields are replaced wholesale; partial updates are not supported.
type UpdateEntryRequest struct {
	Title   string `json:"title" binding:"required,notblank"`
	Content string `json:"content" binding:"required,notblank"`
}

// EntryResponse defines the data returned for a single entry.
type EntryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListEntriesResponse is the envelope returned by the list endpoint.
type ListEntriesResponse struct {
	Success bool            `json:"success"`
	Entries []EntryResponse `json:"entries"`
}

// EntryEnvelope is the envelope returned by endpoints that yield one entry.
type EntryEnvelope struct {
	Success bool          `json:"success"`
	Entry   EntryResponse `json:"entry"`
}

// DeleteEntryResponse is the envelope returned by the delete endpoint.
type DeleteEntryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope returned on any failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToListEntriesResponse converts a slice of domain.Entry to the list envelope.
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{
		Success: true,
		Entries: responses,
	}
}
