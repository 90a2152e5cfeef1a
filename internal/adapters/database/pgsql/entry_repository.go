package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/devanshg03/personal_journal_app/internal/apperrors"
	"github.com/devanshg03/personal_journal_app/internal/core/domain"
	"github.com/devanshg03/personal_journal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EntryRepository struct {
	db *pgxpool.Pool
}

func NewEntryRepository(db *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{db: db}
}

// Ensure EntryRepository implements the repository facade
var _ repositories.EntryRepositoryFacade = (*EntryRepository)(nil)

// CreateEntry inserts a new entry. Timestamps come from the column defaults,
// so created_at and updated_at are identical on a fresh row.
func (r *EntryRepository) CreateEntry(ctx context.Context, title string, content string) (*domain.Entry, error) {
	query := `
        INSERT INTO journal_entries (title, content)
        VALUES ($1, $2)
        RETURNING id, title, content, created_at, updated_at;
    `
	var entry domain.Entry
	err := r.db.QueryRow(ctx, query, title, content).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Content,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	return &entry, nil
}

func (r *EntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	query := `
        SELECT id, title, content, created_at, updated_at
        FROM journal_entries
        WHERE id = $1;
    `
	var entry domain.Entry
	err := r.db.QueryRow(ctx, query, entryID).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Content,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID: %w", err)
	}
	return &entry, nil
}

// FindEntries returns every entry, most recent first. The query is backed by
// the created_at DESC index.
func (r *EntryRepository) FindEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `
        SELECT id, title, content, created_at, updated_at
        FROM journal_entries
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var entry domain.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Content,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}

	return entries, nil
}

// UpdateEntry replaces title and content in a single statement, so a
// concurrent reader never observes a half-written row. created_at is left
// untouched.
func (r *EntryRepository) UpdateEntry(ctx context.Context, entryID int64, title string, content string) (*domain.Entry, error) {
	query := `
        UPDATE journal_entries
        SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP
        WHERE id = $3
        RETURNING id, title, content, created_at, updated_at;
    `
	var entry domain.Entry
	err := r.db.QueryRow(ctx, query, title, content, entryID).Scan(
		&entry.ID,
		&entry.Title,
		&entry.Content,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return &entry, nil
}

// DeleteEntry removes the row permanently. Deleting an already-deleted entry
// reports ErrNotFound rather than failing hard.
func (r *EntryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	query := `DELETE FROM journal_entries WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
