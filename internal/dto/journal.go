package dto

import "github.com/SscSPs/journal_backend/internal/core/domain"

// CreateEntryRequest defines the data needed to create a journal entry.
type CreateEntryRequest struct {
	Text string `json:"text" validate:"required"`
	Date string `json:"date" validate:"required"`
}

// UpdateEntryRequest defines the data allowed for updating a journal entry.
// An empty field is treated as not supplied; at least one must be set.
type UpdateEntryRequest struct {
	Text string `json:"text" validate:"required_without=Date"`
	Date string `json:"date" validate:"required_without=Text"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Text:      e.Text,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToListEntryResponse converts a slice of domain.JournalEntry to a slice of EntryResponse DTOs
func ToListEntryResponse(entries []domain.JournalEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}
