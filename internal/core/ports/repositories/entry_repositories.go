package repositories

import (
	"context"

	"github.com/devanshg03/personal_journal_app/internal/core/domain"
)

// EntryReader defines read operations for journal entries
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its ID.
	// Returns apperrors.ErrNotFound if no such entry exists.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// FindEntries retrieves all entries ordered by created_at descending.
	FindEntries(ctx context.Context) ([]domain.Entry, error)
}

// EntryWriter defines write operations for journal entries
type EntryWriter interface {
	// CreateEntry persists a new entry and returns it with the generated
	// ID and timestamps.
	CreateEntry(ctx context.Context, title string, content string) (*domain.Entry, error)

	// UpdateEntry replaces title and content on an existing entry and
	// refreshes updated_at. Returns apperrors.ErrNotFound if the ID is absent.
	UpdateEntry(ctx context.Context, entryID int64, title string, content string) (*domain.Entry, error)

	// DeleteEntry removes an entry permanently. Returns apperrors.ErrNotFound
	// if the ID is absent, so a repeated delete is a not-found, not a crash.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
