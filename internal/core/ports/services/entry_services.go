package services

import (
	"context"

	"github.com/devanshg03/personal_journal_app/internal/core/domain"
	"github.com/devanshg03/personal_journal_app/internal/dto"
)

// EntryReaderSvc defines read operations for journal entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry by ID.
	GetEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// ListEntries retrieves all entries, most recent first.
	ListEntries(ctx context.Context) ([]domain.Entry, error)
}

// EntryWriterSvc defines write operations for journal entries
type EntryWriterSvc interface {
	// CreateEntry validates and creates a new entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error)

	// UpdateEntry validates and updates an existing entry.
	UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest) (*domain.Entry, error)

	// DeleteEntry removes an entry permanently.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
