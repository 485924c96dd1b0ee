package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/journal_backend/internal/apperrors"
	"github.com/SscSPs/journal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_backend/internal/core/ports/services"
	"github.com/SscSPs/journal_backend/internal/dto"
	"github.com/SscSPs/journal_backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

// journalService implements JournalSvcFacade on top of whole-document
// read-modify-write cycles against a DocumentReadWriter.
type journalService struct {
	BaseService
	store    portsrepo.DocumentReadWriter
	validate *validator.Validate
	ids      *utils.EntryIDGenerator
	now      func() time.Time

	// mu serializes read-modify-write cycles so concurrent requests
	// in this process cannot overwrite each other's changes.
	mu sync.Mutex
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithClock overrides the time source used for IDs and timestamps.
func WithClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(store portsrepo.DocumentReadWriter, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		store:    store,
		validate: validator.New(),
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}
	svc.ids = utils.NewEntryIDGenerator(svc.now)

	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ListEntries(ctx context.Context) []domain.JournalEntry {
	doc := s.store.Read(ctx)
	s.LogDebug(ctx, "Listed journal entries", slog.Int("count", len(doc.Entries)))
	return doc.Entries
}

func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		s.LogWarn(ctx, "Create entry request failed validation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("text and date are required: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Read(ctx)

	entry := domain.JournalEntry{
		ID:        s.ids.Next(func(id string) bool { return doc.IndexOf(id) >= 0 }),
		Text:      req.Text,
		Date:      req.Date,
		CreatedAt: domain.FormatTimestamp(s.now()),
	}
	doc.Prepend(entry)

	if err := s.store.Write(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to persist new journal entry", slog.String("entry_id", entry.ID))
		return nil, fmt.Errorf("failed to save journal entry: %w: %w", apperrors.ErrPersistence, err)
	}

	s.LogInfo(ctx, "Journal entry created", slog.String("entry_id", entry.ID))
	return &entry, nil
}

func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		s.LogWarn(ctx, "Update entry request failed validation", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("text or date is required for update: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Read(ctx)
	idx := doc.IndexOf(entryID)
	if idx == -1 {
		return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
	}

	entry := &doc.Entries[idx]
	if req.Text != "" {
		entry.Text = req.Text
	}
	if req.Date != "" {
		entry.Date = req.Date
	}
	entry.UpdatedAt = domain.FormatTimestamp(s.now())

	if err := s.store.Write(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to persist updated journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w: %w", apperrors.ErrPersistence, err)
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	updated := *entry
	return &updated, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Read(ctx)
	idx := doc.IndexOf(entryID)
	if idx == -1 {
		return fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
	}

	doc.RemoveAt(idx)

	if err := s.store.Write(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to persist journal document after delete", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete journal entry: %w: %w", apperrors.ErrPersistence, err)
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}
