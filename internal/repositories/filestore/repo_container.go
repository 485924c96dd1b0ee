package filestore

import (
	portsrepo "github.com/SscSPs/journal_backend/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// NewRepositoryProvider wires the file-backed repositories.
func NewRepositoryProvider(fsys afero.Fs, journalFilePath string) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalStore: NewJSONDocumentStore(fsys, journalFilePath),
	}
}
