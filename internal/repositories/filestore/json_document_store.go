package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/SscSPs/journal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_backend/internal/core/ports/repositories"
	"github.com/SscSPs/journal_backend/internal/middleware"
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// JSONDocumentStore keeps the whole journal document in a single JSON file.
// Every call reads or writes the complete document; there is no cache.
type JSONDocumentStore struct {
	fs   afero.Fs
	path string
}

// NewJSONDocumentStore creates a store for the document at path on the given filesystem.
func NewJSONDocumentStore(fsys afero.Fs, path string) *JSONDocumentStore {
	return &JSONDocumentStore{fs: fsys, path: path}
}

const defaultDocumentMode fs.FileMode = 0o644

var _ portsrepo.DocumentStoreFacade = (*JSONDocumentStore)(nil)

// Read loads the document. Any failure degrades to an empty document and is only logged.
func (s *JSONDocumentStore) Read(ctx context.Context) domain.JournalDocument {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("journal_file", s.path))

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Journal document missing, using empty document")
		} else {
			logger.Error("Error reading journal document", slog.String("error", err.Error()))
		}
		return domain.NewJournalDocument()
	}

	var doc domain.JournalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Error("Error parsing journal document", slog.String("error", err.Error()))
		return domain.NewJournalDocument()
	}
	if doc.Entries == nil {
		doc.Entries = []domain.JournalEntry{}
	}
	return doc
}

// Write replaces the document. Data goes to a temporary file in the same
// directory which is then renamed over the target.
func (s *JSONDocumentStore) Write(ctx context.Context, doc domain.JournalDocument) error {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("journal_file", s.path))

	if doc.Entries == nil {
		doc.Entries = []domain.JournalEntry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("Error encoding journal document", slog.String("error", err.Error()))
		return fmt.Errorf("failed to encode journal document: %w", err)
	}

	if err := s.writeFile(data); err != nil {
		logger.Error("Error writing journal document", slog.String("error", err.Error()))
		return err
	}

	logger.Debug("Journal document written", slog.Int("entries", len(doc.Entries)))
	return nil
}

// documentMode returns the permissions the replacement file must carry.
func (s *JSONDocumentStore) documentMode() fs.FileMode {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		return defaultDocumentMode
	}
	return info.Mode().Perm()
}

func (s *JSONDocumentStore) writeFile(data []byte) error {
	dir := filepath.Dir(s.path)
	mode := s.documentMode()
	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write temp file %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to close temp file %s: %w", tmpName, err)
	}
	// temp files are created 0600
	if err := s.fs.Chmod(tmpName, mode); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to set mode on temp file %s: %w", tmpName, err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Ensure creates the parent directory and an empty document if the file does not exist yet.
func (s *JSONDocumentStore) Ensure(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("journal_file", s.path))

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to stat journal document: %w", err)
	}
	if exists {
		return nil
	}

	logger.Info("Creating empty journal document")
	if err := s.Write(ctx, domain.NewJournalDocument()); err != nil {
		return fmt.Errorf("failed to initialize journal document: %w", err)
	}
	return nil
}
