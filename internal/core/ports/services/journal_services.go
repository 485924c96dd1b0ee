package services

import (
	"context"

	"github.com/SscSPs/journal_backend/internal/core/domain"
	"github.com/SscSPs/journal_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// ListEntries returns every entry in document order (most recent first).
	// It never fails: an unreadable store lists as empty.
	ListEntries(ctx context.Context) []domain.JournalEntry
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateEntry validates the request and prepends a new entry to the document.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// UpdateEntry overwrites the supplied fields of an existing entry.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes an existing entry from the document.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
