package repositories

import (
	"context"

	"github.com/SscSPs/journal_backend/internal/core/domain"
)

// DocumentReader defines the read path to the persisted journal document.
type DocumentReader interface {
	// Read loads the whole document. A missing, unreadable or malformed store
	// yields an empty document rather than an error.
	Read(ctx context.Context) domain.JournalDocument
}

// DocumentWriter defines the write path to the persisted journal document.
type DocumentWriter interface {
	// Write serializes and persists the whole document, replacing prior content.
	Write(ctx context.Context, doc domain.JournalDocument) error
}

// DocumentBootstrapper prepares the backing store on startup.
type DocumentBootstrapper interface {
	// Ensure creates an empty document if none exists yet.
	Ensure(ctx context.Context) error
}

// DocumentStoreFacade combines all journal document store interfaces.
type DocumentStoreFacade interface {
	DocumentReader
	DocumentWriter
	DocumentBootstrapper
}

// DocumentReadWriter is the read-modify-write surface services depend on.
type DocumentReadWriter interface {
	DocumentReader
	DocumentWriter
}
