package services

import (
	portsrepo "github.com/devanshg03/personal_journal_app/internal/core/ports/repositories"
	portssvc "github.com/devanshg03/personal_journal_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Entry: NewEntryService(repos.EntryRepo),
	}
}

// Compile-time check that the implementation satisfies the facade
var _ portssvc.EntrySvcFacade = (*entryService)(nil)
