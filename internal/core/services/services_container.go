package services

import (
	portsrepo "github.com/SscSPs/journal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, journalOptions ...JournalServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Journal: NewJournalService(repos.JournalStore, journalOptions...),
	}
}
